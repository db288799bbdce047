package domain

import "fmt"

// PreviewKind tags the sizing policy carried by a PreviewSize.
type PreviewKind uint8

const (
	BestFit PreviewKind = iota
	OriginalSize
	Resized
)

func (k PreviewKind) String() string {
	switch k {
	case BestFit:
		return "best_fit"
	case OriginalSize:
		return "original_size"
	case Resized:
		return "resized"
	default:
		return fmt.Sprintf("PreviewKind(%d)", k)
	}
}

// PreviewSize is the sizing policy used to derive a preview from the original image. Only the fields belonging to
// the kind are meaningful: the canvas for BestFit, the factor for Resized.
type PreviewSize struct {
	kind   PreviewKind
	width  int
	height int
	factor float64
}

// NewBestFit returns a fit-to-box policy. A zero canvas is a placeholder that is resolved with FitTo before the
// preview is computed.
func NewBestFit(width, height int) PreviewSize {
	return PreviewSize{kind: BestFit, width: width, height: height}
}

func NewOriginalSize() PreviewSize {
	return PreviewSize{kind: OriginalSize}
}

func NewResized(factor float64) PreviewSize {
	return PreviewSize{kind: Resized, factor: factor}
}

func (p PreviewSize) Kind() PreviewKind {
	return p.kind
}

// Canvas returns the bounding box of a BestFit policy, zero for the other kinds.
func (p PreviewSize) Canvas() (int, int) {
	return p.width, p.height
}

// Factor returns the scale factor of a Resized policy, 1 for OriginalSize and 0 for BestFit.
func (p PreviewSize) Factor() float64 {
	switch p.kind {
	case OriginalSize:
		return 1
	case Resized:
		return p.factor
	default:
		return 0
	}
}

// FitTo replaces the canvas of a BestFit policy. Other kinds are returned unchanged.
func (p PreviewSize) FitTo(width, height int) PreviewSize {
	if p.kind != BestFit {
		return p
	}

	return NewBestFit(width, height)
}

type level struct {
	code string
	size PreviewSize
}

const fitScreenCode = "preview_fit_screen"

// levels holds every discrete zoom level in ascending order. Stepping moves by index in this table, factors are
// never derived arithmetically.
var levels = []level{
	{code: "preview_10", size: NewResized(0.1)},
	{code: "preview_25", size: NewResized(0.25)},
	{code: "preview_33", size: NewResized(0.33)},
	{code: "preview_50", size: NewResized(0.5)},
	{code: "preview_66", size: NewResized(0.66)},
	{code: "preview_75", size: NewResized(0.75)},
	{code: "preview_100", size: NewOriginalSize()},
	{code: "preview_133", size: NewResized(1.33)},
	{code: "preview_150", size: NewResized(1.5)},
	{code: "preview_200", size: NewResized(2.0)},
}

// Codes lists every known code, fit-to-screen first followed by the zoom levels in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(levels)+1)
	codes = append(codes, fitScreenCode)
	for _, l := range levels {
		codes = append(codes, l.code)
	}

	return codes
}

// PreviewSizeFromCode maps a persisted code to its PreviewSize. Fit-to-screen decodes to a BestFit with an empty
// canvas.
func PreviewSizeFromCode(code string) (PreviewSize, error) {
	if code == fitScreenCode {
		return NewBestFit(0, 0), nil
	}

	for _, l := range levels {
		if l.code == code {
			return l.size, nil
		}
	}

	return PreviewSize{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
}

// MustPreviewSizeFromCode is like PreviewSizeFromCode but panics on an unknown code.
func MustPreviewSizeFromCode(code string) PreviewSize {
	size, err := PreviewSizeFromCode(code)
	if err != nil {
		panic(err)
	}

	return size
}

// index returns the position of p in levels, or -1 for BestFit and for factors outside the table.
func (p PreviewSize) index() int {
	if p.kind == BestFit {
		return -1
	}

	for i, l := range levels {
		if l.size.kind == p.kind && l.size.factor == p.factor {
			return i
		}
	}

	return -1
}

// Code returns the persisted code of p.
func (p PreviewSize) Code() (string, error) {
	if p.kind == BestFit {
		return fitScreenCode, nil
	}

	i := p.index()
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnrepresentableValue, p)
	}

	return levels[i].code, nil
}

// Smaller returns the next zoom level down. BestFit steps to OriginalSize.
func (p PreviewSize) Smaller() (PreviewSize, error) {
	if p.kind == BestFit {
		return NewOriginalSize(), nil
	}

	i := p.index()
	if i <= 0 {
		return PreviewSize{}, fmt.Errorf("%w: %s", ErrAtLowerBound, p)
	}

	return levels[i-1].size, nil
}

// Larger returns the next zoom level up. BestFit steps to OriginalSize.
func (p PreviewSize) Larger() (PreviewSize, error) {
	if p.kind == BestFit {
		return NewOriginalSize(), nil
	}

	i := p.index()
	if i < 0 || i == len(levels)-1 {
		return PreviewSize{}, fmt.Errorf("%w: %s", ErrAtUpperBound, p)
	}

	return levels[i+1].size, nil
}

func (p PreviewSize) CanBeSmaller() bool {
	return p.kind != Resized || p.factor > levels[0].size.factor
}

func (p PreviewSize) CanBeLarger() bool {
	return p.kind != Resized || p.factor < levels[len(levels)-1].size.factor
}

func (p PreviewSize) String() string {
	switch p.kind {
	case BestFit:
		return fmt.Sprintf("best_fit(%dx%d)", p.width, p.height)
	case OriginalSize:
		return "original_size"
	case Resized:
		return fmt.Sprintf("resized(%g)", p.factor)
	default:
		return p.kind.String()
	}
}

func (p PreviewSize) MarshalText() ([]byte, error) {
	code, err := p.Code()
	if err != nil {
		return nil, err
	}

	return []byte(code), nil
}

func (p *PreviewSize) UnmarshalText(text []byte) error {
	size, err := PreviewSizeFromCode(string(text))
	if err != nil {
		return err
	}

	*p = size
	return nil
}
