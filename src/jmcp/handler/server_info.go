package handler

import (
	"fmt"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_configKeyJupyterURL   = "jupyter.url"
	_configKeyNotebooksDir = "notebooks.dir"
)

// Output the Jupyter server address and notebook directory for reference by
// clients and other tooling. The JSON-RPC inbound independently adds its own
// fields to the Server Info file.
func outputServerInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var jupyterURL string
	if err := cfg.Get(_configKeyJupyterURL).Populate(&jupyterURL); err != nil {
		return fmt.Errorf("loading jupyter config: %v", err)
	}
	if err := infofile.UpdateField("jupyter-url", jupyterURL); err != nil {
		return fmt.Errorf("outputting jupyter address to info file: %w", err)
	}

	var notebooksDir string
	if err := cfg.Get(_configKeyNotebooksDir).Populate(&notebooksDir); err != nil {
		return fmt.Errorf("loading notebooks config: %v", err)
	}
	if err := infofile.UpdateField("notebooks-dir", notebooksDir); err != nil {
		return fmt.Errorf("outputting notebooks directory to info file: %w", err)
	}

	return nil
}
