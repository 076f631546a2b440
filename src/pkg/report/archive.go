package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
Archive keeps a copy of what was sent under <dir>/<YYYY-MM-DD>/:
every rendered image as PNG, the HTML body and a payload.json manifest.

It returns the directory it wrote to.
*/
func Archive(payload *Payload, dir string) (runDirPath string, e *xerr.Error) {
	runDirPath = filepath.Join(dir, payload.Date.Format(time.DateOnly))
	e = ensureOutputDirectory(runDirPath)
	if e != nil {
		return runDirPath, e
	}

	for _, artifact := range payload.Artifacts {
		e = saveFile(filepath.Join(runDirPath, artifact.Name+".png"), artifact.PNG)
		if e != nil {
			return runDirPath, e
		}
	}

	e = saveFile(filepath.Join(runDirPath, "body.html"), []byte(payload.HTML))
	if e != nil {
		return runDirPath, e
	}

	e = saveJSONToFile(filepath.Join(runDirPath, "payload.json"), payload)
	if e != nil {
		return runDirPath, e
	}

	tl.Log(tl.Info1, palette.Green, "Archived %v images and the body to '%s'", len(payload.Artifacts), runDirPath)
	return runDirPath, nil
}

func ensureOutputDirectory(outputDirPath string) (e *xerr.Error) {
	err := os.MkdirAll(outputDirPath, 0o755)
	if err != nil {
		e = xerr.NewError(err, "create archive directory", outputDirPath)
		return e
	}
	return nil
}

func saveFile(destinationPath string, content []byte) (e *xerr.Error) {
	writeErr := os.WriteFile(destinationPath, content, 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write archive file", destinationPath)
		return e
	}

	tl.Log(tl.Debug, palette.CyanDim, "Saved '%s'", destinationPath)
	return nil
}

/*
saveJSONToFile marshals value to pretty-printed JSON and writes it to destinationPath,
overwriting any existing file.
*/
func saveJSONToFile(destinationPath string, value any) (e *xerr.Error) {
	jsonBytes, marshalErr := json.MarshalIndent(value, "", "  ")
	if marshalErr != nil {
		e = xerr.NewError(marshalErr, "marshal value to JSON", destinationPath)
		return e
	}

	return saveFile(destinationPath, jsonBytes)
}
