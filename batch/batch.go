// Package batch drives whole-tree conversion: it walks an input root
// for declaration files, converts each one and writes the mirrored
// Scala source under an output root.
package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyenyou/scala-js-ts-importer/config"
	"github.com/nguyenyou/scala-js-ts-importer/errors"
	"github.com/nguyenyou/scala-js-ts-importer/logger"
	"github.com/nguyenyou/scala-js-ts-importer/scalagen"
)

// FileError records one per-file conversion failure.
type FileError struct {
	Path string
	Err  error
}

// Result summarizes one batch run.
type Result struct {
	Converted int
	Failed    int
	Failures  []FileError
}

// Run converts every declaration file under inputRoot, writing the
// mirrored output under outputRoot. Per-file failures are logged and
// counted, never fatal to the walk; Run only fails when the walk
// itself cannot proceed.
func Run(inputRoot, outputRoot string, cfg *config.Config) (*Result, error) {
	result := &Result{}

	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, cfg.Batch.InputSuffix) {
			return nil
		}

		outPath, convErr := ConvertFile(path, inputRoot, outputRoot, cfg)
		if convErr != nil {
			result.Failed++
			result.Failures = append(result.Failures, FileError{Path: path, Err: convErr})
			logger.Errorw("Conversion failed",
				"file", path,
				"error", convErr)
			return nil
		}

		result.Converted++
		logger.Debugw("Converted",
			"file", path,
			"output", outPath)
		return nil
	})
	if err != nil {
		return result, errors.Wrapf(err, "walking %s", inputRoot)
	}
	return result, nil
}

// ConvertFile converts one declaration file and writes its output to
// the mirrored path under outputRoot, creating directories as needed.
// It returns the written path.
func ConvertFile(path, inputRoot, outputRoot string, cfg *config.Config) (string, error) {
	if !strings.HasSuffix(path, cfg.Batch.InputSuffix) {
		return "", errors.Wrap(errors.ErrNotDeclarationFile, path)
	}

	rel, err := filepath.Rel(inputRoot, path)
	if err != nil {
		return "", errors.Wrapf(err, "relativizing %s", path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	packageName := cfg.PackageFor(PackageName(rel, cfg.Batch.InputSuffix))
	output, err := scalagen.Convert(source, packageName)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(outputRoot,
		strings.TrimSuffix(rel, cfg.Batch.InputSuffix)+cfg.Output.Suffix)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", filepath.Dir(outPath))
	}
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", outPath)
	}
	return outPath, nil
}

// PackageName derives a package name from a relative declaration-file
// path: the suffix is stripped, path separators become dots and runes
// outside the identifier alphabet become underscores.
func PackageName(relPath, suffix string) string {
	name := strings.TrimSuffix(filepath.ToSlash(relPath), suffix)
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r == '/':
			sb.WriteByte('.')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
