package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/export"
	"tableflip.dev/sojourn/pkg/store"
)

type Export struct {
	Trip     string
	Format   export.Format
	Options  export.Options
	Out      string
	AutoFill bool
	Commit   bool

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	data, err := n.Persistence.Load(ctx, n.Trip)
	if err != nil {
		return err
	}

	d := draft.New(data)
	if n.AutoFill {
		d.AutoFillTransportFields()
	}
	snapshot := d.Snapshot()

	out, err := export.Render(n.Format, snapshot, n.Options)
	if err != nil {
		return err
	}

	path := n.Out
	if path == "" {
		path = safeName(snapshot.Name) + n.Format.Ext()
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(out))

	// A failed write above leaves the stored trip untouched; the commit
	// happens only after the artifact is safely on disk.
	if n.Commit {
		if err := n.Persistence.Save(n.Trip, snapshot); err != nil {
			return err
		}
		fmt.Printf("committed edits back to %s\n", n.Trip)
	}
	return nil
}

func safeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "trip"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
}
