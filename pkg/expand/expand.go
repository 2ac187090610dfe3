// Package expand grows a file by duplicating the content of a smaller source
// file until the result reaches a target size.
package expand

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Expand writes the content of cfg.InputPath to cfg.OutputPath once, then
// appends it again until the running size meets cfg.Threshold.
func Expand(cfg Config, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid configuration: %w", err)
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	startTime := time.Now()
	logger.Info("Starting expansion",
		zap.String("inputPath", cfg.InputPath),
		zap.String("outputPath", cfg.OutputPath),
		zap.Int64("thresholdBytes", cfg.Threshold.Bytes()),
		zap.Stringer("threshold", cfg.Threshold))

	content, info, err := readSource(cfg.InputPath, logger)
	if err != nil {
		return Result{}, err
	}
	if err := checkDistinct(info, cfg.OutputPath); err != nil {
		return Result{}, err
	}

	initial := info.Size()
	contentSize := int64(len(content))
	if initial != contentSize {
		logger.Warn("Source size changed between stat and read, using bytes read",
			zap.String("inputPath", cfg.InputPath),
			zap.Int64("statSizeBytes", initial),
			zap.Int64("readSizeBytes", contentSize))
	}

	k, final, err := Plan(contentSize, contentSize, cfg.Threshold)
	if err != nil {
		logger.Error("Cannot plan expansion",
			zap.String("inputPath", cfg.InputPath),
			zap.Int64("contentSizeBytes", contentSize),
			zap.Error(err))
		return Result{}, fmt.Errorf("failed to plan expansion of %s: %w", cfg.InputPath, err)
	}
	logger.Debug("Planned expansion",
		zap.Int64("contentSizeBytes", contentSize),
		zap.Int64("extraCopies", k),
		zap.Int64("finalSizeBytes", final))

	if err := ensureDirectory(filepath.Dir(cfg.OutputPath), logger); err != nil {
		return Result{}, &IOError{Op: "create", Path: filepath.Dir(cfg.OutputPath), Err: err}
	}

	if err := writeCopies(cfg.OutputPath, content, k, reporter, logger); err != nil {
		return Result{}, err
	}
	reporter.Done(cfg.OutputPath, final)

	logger.Info("Expansion completed",
		zap.String("outputPath", cfg.OutputPath),
		zap.Int64("copies", k+1),
		zap.Int64("finalSizeBytes", final),
		zap.Duration("elapsed", time.Since(startTime)))

	return Result{
		OutputPath:  cfg.OutputPath,
		InitialSize: initial,
		ContentSize: contentSize,
		Copies:      k + 1,
		FinalSize:   final,
	}, nil
}

// readSource loads the whole source file and returns it with its file info.
func readSource(path string, logger *zap.Logger) (content []byte, info fs.FileInfo, err error) {
	in, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open input file", zap.String("inputPath", path), zap.Error(err))
		return nil, nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			err = multierr.Append(err, &IOError{Op: "close", Path: path, Err: cerr})
		}
	}()

	info, err = in.Stat()
	if err != nil {
		return nil, nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, nil, &IOError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}

	content, err = io.ReadAll(in)
	if err != nil {
		logger.Error("Failed to read input file", zap.String("inputPath", path), zap.Error(err))
		return nil, nil, &IOError{Op: "read", Path: path, Err: err}
	}

	logger.Debug("Read input file",
		zap.String("inputPath", path),
		zap.Int("contentSizeBytes", len(content)))
	return content, info, nil
}

// checkDistinct rejects an output path that already names the source file,
// which would be truncated before it is read back.
func checkDistinct(source fs.FileInfo, output string) error {
	out, err := os.Stat(output)
	if err != nil {
		// A missing output is the common case; anything else surfaces on create.
		return nil
	}
	if os.SameFile(source, out) {
		return fmt.Errorf("%s: %w", output, ErrSameFile)
	}
	return nil
}

// writeCopies truncates path, writes content once and then appends it extra
// more times, reporting the running size after each append.
func writeCopies(path string, content []byte, extra int64, reporter Reporter, logger *zap.Logger) (err error) {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("outputPath", path), zap.Error(err))
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("outputPath", path), zap.Error(cerr))
			err = multierr.Append(err, &IOError{Op: "close", Path: path, Err: cerr})
		}
	}()

	writer := bufio.NewWriter(out)
	size := int64(len(content))

	if _, err := writer.Write(content); err != nil {
		logger.Error("Failed to write output file", zap.String("outputPath", path), zap.Error(err))
		return &IOError{Op: "write", Path: path, Err: err}
	}

	for i := int64(0); i < extra; i++ {
		if _, err := writer.Write(content); err != nil {
			logger.Error("Failed to append copy",
				zap.String("outputPath", path),
				zap.Int64("copy", i+2),
				zap.Error(err))
			return &IOError{Op: "write", Path: path, Err: err}
		}
		size += int64(len(content))
		reporter.Progress(size)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("outputPath", path), zap.Error(err))
		return &IOError{Op: "flush", Path: path, Err: err}
	}
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
