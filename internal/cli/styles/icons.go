package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck   = ""
	IconX       = ""
	IconWarning = ""

	IconColumns  = "" // split
	IconFolder   = "" // tab group
	IconFile     = "" // item
	IconWindow   = "" // floating window
	IconEyeSlash = "" // hidden
	IconMinimize = "" // minimized
	IconDatabase = ""
)
