package terminal

// ColorFg is a foreground color from the 16-color ANSI palette
type ColorFg uint8

const (
	ColorFgDefault ColorFg = iota
	ColorFgBlack
	ColorFgBlackIntense
	ColorFgRed
	ColorFgRedIntense
	ColorFgGreen
	ColorFgGreenIntense
	ColorFgYellow
	ColorFgYellowIntense
	ColorFgBlue
	ColorFgBlueIntense
	ColorFgMagenta
	ColorFgMagentaIntense
	ColorFgCyan
	ColorFgCyanIntense
	ColorFgWhite
	ColorFgWhiteIntense
)

// ColorBg is a background color from the 16-color ANSI palette
type ColorBg uint8

const (
	ColorBgDefault ColorBg = iota
	ColorBgBlack
	ColorBgBlackIntense
	ColorBgRed
	ColorBgRedIntense
	ColorBgGreen
	ColorBgGreenIntense
	ColorBgYellow
	ColorBgYellowIntense
	ColorBgBlue
	ColorBgBlueIntense
	ColorBgMagenta
	ColorBgMagentaIntense
	ColorBgCyan
	ColorBgCyanIntense
	ColorBgWhite
	ColorBgWhiteIntense
)

var fgSeq = [...]string{
	ColorFgDefault:        FgDefault,
	ColorFgBlack:          "\x1b[30m",
	ColorFgBlackIntense:   "\x1b[90m",
	ColorFgRed:            "\x1b[31m",
	ColorFgRedIntense:     "\x1b[91m",
	ColorFgGreen:          "\x1b[32m",
	ColorFgGreenIntense:   "\x1b[92m",
	ColorFgYellow:         "\x1b[33m",
	ColorFgYellowIntense:  "\x1b[93m",
	ColorFgBlue:           "\x1b[34m",
	ColorFgBlueIntense:    "\x1b[94m",
	ColorFgMagenta:        "\x1b[35m",
	ColorFgMagentaIntense: "\x1b[95m",
	ColorFgCyan:           "\x1b[36m",
	ColorFgCyanIntense:    "\x1b[96m",
	ColorFgWhite:          "\x1b[37m",
	ColorFgWhiteIntense:   "\x1b[97m",
}

var bgSeq = [...]string{
	ColorBgDefault:        BgDefault,
	ColorBgBlack:          "\x1b[40m",
	ColorBgBlackIntense:   "\x1b[100m",
	ColorBgRed:            "\x1b[41m",
	ColorBgRedIntense:     "\x1b[101m",
	ColorBgGreen:          "\x1b[42m",
	ColorBgGreenIntense:   "\x1b[102m",
	ColorBgYellow:         "\x1b[43m",
	ColorBgYellowIntense:  "\x1b[103m",
	ColorBgBlue:           "\x1b[44m",
	ColorBgBlueIntense:    "\x1b[104m",
	ColorBgMagenta:        "\x1b[45m",
	ColorBgMagentaIntense: "\x1b[105m",
	ColorBgCyan:           "\x1b[46m",
	ColorBgCyanIntense:    "\x1b[106m",
	ColorBgWhite:          "\x1b[47m",
	ColorBgWhiteIntense:   "\x1b[107m",
}

// Seq returns the SGR sequence selecting the color; unknown values map to default
func (c ColorFg) Seq() string {
	if int(c) < len(fgSeq) {
		return fgSeq[c]
	}
	return FgDefault
}

// Seq returns the SGR sequence selecting the color; unknown values map to default
func (c ColorBg) Seq() string {
	if int(c) < len(bgSeq) {
		return bgSeq[c]
	}
	return BgDefault
}
