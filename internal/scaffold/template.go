// Package scaffold holds the template files a setup run writes into the
// project root.
package scaffold

// RequirementsTemplate is the dependency manifest for the client package.
const RequirementsTemplate = `# MCP and LinkedIn dependencies
mcp>=1.0.0
httpx>=0.27.0
python-dotenv>=1.0.0
linkedin-api>=2.0.0
uv>=0.1.0
`

// EnvTemplate holds placeholder credentials and the MCP server address.
// Users are expected to edit it; a later setup run overwrites those edits.
const EnvTemplate = `# LinkedIn Credentials
LINKEDIN_EMAIL=your_email@example.com
LINKEDIN_PASSWORD=your_password_here

# MCP Server Configuration
MCP_SERVER_HOST=127.0.0.1
MCP_SERVER_PORT=8000
MCP_SERVER_PATH=/mcp
`

// GitignoreTemplate keeps secrets, the environment and build output out of git.
const GitignoreTemplate = `.env
.venv/
__pycache__/
*.pyc
*.pyo
*.pyd
.Python
*.so
*.egg
*.egg-info/
dist/
build/
.DS_Store
.vscode/
.idea/
`

// PackageInitTemplate marks the client package and pins its version.
const PackageInitTemplate = `"""LinkedIn MCP Client Package."""
__version__ = "1.0.0"
`

// File names written at the project root.
const (
	RequirementsFile = "requirements.txt"
	EnvFile          = ".env"
	GitignoreFile    = ".gitignore"
	PackageInitFile  = "__init__.py"
)
