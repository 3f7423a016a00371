package blendemo

const brokenCode = "broken code"
const preViolation = "precondition violation"

type errMsg string
func (self errMsg) Error() string { return string(self) }

const (
	errNilTarget  errMsg = "can't draw on a nil target"
	errNilTexture errMsg = "can't draw a nil texture"
)
