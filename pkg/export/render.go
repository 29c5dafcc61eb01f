package export

import "tableflip.dev/sojourn/pkg/trip"

// Render dispatches to the encoder for the format and returns the artifact
// bytes. The pdf handle is released after copying; callers needing a live
// handle use PDF directly.
func Render(format Format, data *trip.Data, o Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(data, o.Scope)
	case FormatText:
		return []byte(Text(data, o.Scope)), nil
	case FormatICal:
		s, err := Calendar(data)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case FormatPDF:
		h, err := PDF(data, o)
		if err != nil {
			return nil, err
		}
		defer h.Release()
		out := make([]byte, len(h.Bytes()))
		copy(out, h.Bytes())
		return out, nil
	}
	return nil, &unknownFormatError{format}
}

type unknownFormatError struct{ f Format }

func (e *unknownFormatError) Error() string {
	return "export: unknown format " + string(e.f)
}
