package preview

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/export"
	"tableflip.dev/sojourn/pkg/store"
)

type Preview struct {
	Trip     string
	Format   export.Format
	Options  export.Options
	AutoFill bool

	Persistence store.Persistence
}

func (n *Preview) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not preview, no persistence")
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

	if n.Format == export.FormatPDF {
		h, err := export.PDF(snapshot, n.Options)
		if err != nil {
			return err
		}
		defer h.Release()
		fmt.Printf("pdf preview: %d pages, %d bytes\n", h.Pages(), len(h.Bytes()))
		return nil
	}

	out, err := export.Render(n.Format, snapshot, n.Options)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
