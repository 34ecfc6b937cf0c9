package controller

// Console frames text lines for the serial peer and mirrors them to the
// diagnostic sink.
type Console struct {
	tx   ByteTransport
	diag Diag
}

func NewConsole(tx ByteTransport, diag Diag) *Console {
	if diag == nil {
		diag = NopDiag{}
	}
	return &Console{tx: tx, diag: diag}
}

// WriteLine sends "\r<s>\r\n" to the peer and flushes, mirroring s to
// diagnostics first.
func (c *Console) WriteLine(s string) {
	c.diag.Line(s)
	_ = c.tx.WriteByte('\r')
	for i := 0; i < len(s); i++ {
		_ = c.tx.WriteByte(s[i])
	}
	_ = c.tx.WriteByte('\r')
	_ = c.tx.WriteByte('\n')
	_ = c.tx.Flush()
}

const echoHelpText = "Press the user button to cycle through text conversion modes.\r\n" +
	"The following text conversion commands can be sent over the serial link:\r\n" +
	"= : Echo lines unchanged.\r\n" +
	"+ : Echo lines in upper case.\r\n" +
	"- : Echo lines in lower case.\r\n" +
	"~ : Echo lines in inverted case.\r\n" +
	"? : Display this help message."

const controlHelpText = "Hold the user button to activate the controlled LED when enabled.\r\n" +
	"The following LED control commands can be sent over the serial link:\r\n" +
	"0 - Disable all LEDs\r\n" +
	"1 - Enable all LEDs\r\n" +
	"2 - Toggle static LED\r\n" +
	"3 - Toggle blinking LED\r\n" +
	"4 - Toggle strobing LED\r\n" +
	"5 - Toggle controlled LED\r\n" +
	"9 - Toggle LED control inversion\r\n" +
	"? - Display this help message"

// Help returns the command summary for a variant.
func Help(v Variant) string {
	if v == VariantControl {
		return controlHelpText
	}
	return echoHelpText
}
