package styles

// Plain text markers. The tools are meant to run over SSH sessions and in
// cron mails, so no Nerd Font glyphs here.
const (
	IconOK   = "+"
	IconDown = "x"
	IconFail = "!"

	IconBullet = "▸"
)
