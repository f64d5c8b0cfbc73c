package core

// UICallback handles user-facing output during harness operations
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	StyleTitle(title string) string

	GetOutputMode() OutputMode
	IsAutoApprove() bool
	FormatJSON(output JSONOutput) error
}

// SilentUICallback is a no-op implementation (for testing/CI)
type SilentUICallback struct{}

func (s *SilentUICallback) ShowError(title, message string)        {}
func (s *SilentUICallback) ShowSuccess(message string)             {}
func (s *SilentUICallback) ShowWarning(title, message string)      {}
func (s *SilentUICallback) AskConfirmation(title, msg string) bool { return false }
func (s *SilentUICallback) StyleTitle(title string) string         { return title }
func (s *SilentUICallback) GetOutputMode() OutputMode              { return OutputNormal }
func (s *SilentUICallback) IsAutoApprove() bool                    { return false }
func (s *SilentUICallback) FormatJSON(output JSONOutput) error     { return nil }

// ProgressTracker reports link-stage progress for large input sets
type ProgressTracker interface {
	SetTotal(total int)
	Increment(message string)
	Complete()
	Fail(err error)
}

// SilentProgressTracker is a no-op tracker used in quiet/JSON modes and tests
type SilentProgressTracker struct{}

func (s *SilentProgressTracker) SetTotal(total int)        {}
func (s *SilentProgressTracker) Increment(message string)  {}
func (s *SilentProgressTracker) Complete()                 {}
func (s *SilentProgressTracker) Fail(err error)            {}
