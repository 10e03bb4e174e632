package setup

import (
	"path/filepath"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/scaffold"
)

// WriteProjectFiles writes every template file, replacing whatever is on
// disk. A failed write is reported and the remaining files are still written.
func WriteProjectFiles(d Deps, l config.Layout) StepResult {
	r := d.Reporter
	res := StepResult{Name: StepFiles, Status: StatusDone}

	r.Header(titleFiles)

	pkg := filepath.ToSlash(l.Rel(l.PackageDir))
	var failed []string
	for _, tf := range scaffold.DefaultFiles(pkg) {
		if err := scaffold.WriteTemplate(d.FS, l.Root, tf); err != nil {
			r.Failure("Failed to write %s: %v", tf.RelPath, err)
			failed = append(failed, tf.RelPath)
			if res.Err == nil {
				res.Err = errors.Wrap(errors.EWriteFailed, "failed to write "+tf.RelPath, err)
			}
			continue
		}
		r.Success("Created: %s", tf.RelPath)
		res.Files = append(res.Files, tf.RelPath)
	}

	if len(failed) > 0 {
		res.Status = StatusFailed
	}
	return res
}
