// Package flash writes the located payload onto the device's partitions.
package flash

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/payload"
	"github.com/furilabs/furios-reset/pkg/security"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

// Partition labels under the by-partlabel directory. Boot partitions carry
// the slot suffix; userdata is shared between slots.
const (
	userdataLabel = "userdata"
	bootLabel     = "boot"
	dtboLabel     = "dtbo"
)

type cacheDropper interface {
	Drop() error
}

// Report lists what a flash could not do. A report with warnings is still a
// successful flash: userdata was erased and rewritten.
type Report struct {
	Warnings []string
}

func (r *Report) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Warn("flash_warning", "detail", msg)
	r.Warnings = append(r.Warnings, msg)
}

// Pipeline drives the destructive stage of a reset.
type Pipeline struct {
	runner       subprocess.Runner
	cache        cacheDropper
	partlabelDir string
	blockSize    string
}

func NewPipeline(runner subprocess.Runner, cache cacheDropper, partlabelDir, blockSize string) *Pipeline {
	return &Pipeline{
		runner:       runner,
		cache:        cache,
		partlabelDir: partlabelDir,
		blockSize:    blockSize,
	}
}

// Flash streams the userdata archive over the userdata partition, then
// copies the boot and dtbo images onto the slot's partitions. Only the
// userdata extraction can fail the flash; boot image problems become
// warnings because the device can still boot its installed kernel. Page
// cache drops around the writes are advisory.
func (p *Pipeline) Flash(ctx context.Context, set *payload.Set, slotSuffix string) (*Report, error) {
	report := &Report{}

	if err := p.cache.Drop(); err != nil {
		slog.Warn("page_cache_drop_failed", "error", err)
	}

	target := filepath.Join(p.partlabelDir, userdataLabel)
	slog.Info("userdata_extraction_start", "archive", set.Userdata.Path, "target", target)

	err := p.runner.Pipeline(ctx,
		subprocess.Cmd{Name: "tar", Args: []string{"-xzOf", set.Userdata.Path}},
		subprocess.Cmd{Name: "dd", Args: []string{"of=" + target, "bs=" + p.blockSize}},
	)
	if err != nil {
		return report, errors.Wrap(err, "extract userdata archive")
	}
	slog.Info("userdata_extraction_done", "target", target)

	p.flashImage(ctx, report, set.Boot, bootLabel, slotSuffix)
	p.flashImage(ctx, report, set.Dtbo, dtboLabel, slotSuffix)

	if err := p.cache.Drop(); err != nil {
		slog.Warn("page_cache_drop_failed", "error", err)
	}
	return report, nil
}

func (p *Pipeline) flashImage(ctx context.Context, report *Report, src payload.Source, label, slotSuffix string) {
	if src.Origin == payload.OriginNone {
		report.warnf("no %s image found", label)
		return
	}

	partlabel := label + slotSuffix
	if err := security.ValidatePartitionLabel(partlabel); err != nil {
		report.warnf("refusing to flash %s: %v", partlabel, err)
		return
	}

	target := filepath.Join(p.partlabelDir, partlabel)
	if err := p.runner.Run(ctx, "dd", "if="+src.Path, "of="+target, "bs="+p.blockSize); err != nil {
		report.warnf("failed to flash %s to %s: %v", src.Path, target, err)
		return
	}
	slog.Info("image_flashed", "image", src.Path, "target", target)
}
