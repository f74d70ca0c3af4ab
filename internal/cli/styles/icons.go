package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconArrow     = "\uf061" // arrow right
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconWarning   = "\uf071" // warning
	IconInfo      = "\uf05a" // info
	IconRocket    = "\uf135" // rocket
	IconDownload  = "\uf019" // download
	IconBan       = "\uf05e" // ban
	IconFolder    = "\uf07b" // folder
	IconConfig    = "\ue615" // config
	IconDatabase  = "\uf1c0" // database
	IconVersion   = "\uf02b" // tag
	IconGitCommit = "\ue729" // commit
	IconGo        = "\ue627" // go gopher
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconDoctor    = "\uf0f1" // stethoscope
	IconPackage   = "\uf487" // package
)
