package scaffold

import (
	"path"
	"path/filepath"

	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
)

// TemplateFile is one file written verbatim on every setup run.
type TemplateFile struct {
	RelPath string // slash-separated, relative to the project root
	Content string
}

// DefaultFiles returns the template files in write order. packageDir is the
// slash-separated package directory relative to the root.
func DefaultFiles(packageDir string) []TemplateFile {
	return []TemplateFile{
		{RelPath: RequirementsFile, Content: RequirementsTemplate},
		{RelPath: EnvFile, Content: EnvTemplate},
		{RelPath: GitignoreFile, Content: GitignoreTemplate},
		{RelPath: path.Join(packageDir, PackageInitFile), Content: PackageInitTemplate},
	}
}

// WriteTemplate writes tf under root, creating parent directories as needed.
// Existing content is replaced without being read.
func WriteTemplate(fsys fs.FS, root string, tf TemplateFile) error {
	target := filepath.Join(root, filepath.FromSlash(tf.RelPath))
	return fs.WriteFileWithParents(fsys, target, []byte(tf.Content), 0o644)
}
