package service

import (
	"log/slog"

	"github.com/enumura1/svg-comparison/internal/scan"
)

// FileScanner abstracts file scanning.
type FileScanner interface {
	Run(dir string, exts map[string]bool, log *slog.Logger) <-chan scan.FileItem
}

// ScannerService pairs a scanner with the extension set it accepts.
type ScannerService struct {
	FileScan   FileScanner
	Extensions map[string]bool // Supported image extensions
}

// NewScannerService constructs a new ScannerService with the default
// raster extension set.
func NewScannerService(fileScan FileScanner) *ScannerService {
	return &ScannerService{
		FileScan:   fileScan,
		Extensions: map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true},
	}
}

// Scan walks dir for raster files using the service's extension set.
func (s *ScannerService) Scan(dir string, log *slog.Logger) <-chan scan.FileItem {
	return s.FileScan.Run(dir, s.Extensions, log)
}
