package utils

import "github.com/schollz/progressbar/v3"

// DescCombining is the progress bar description used by build
const DescCombining = "Combining"

// NewProgressBar creates a consistently styled progress bar.
// A negative total renders a spinner; otherwise the bar shows the count
// and the rate.
//
// Example:
//
//	bar := utils.NewProgressBar(len(outputs), utils.DescCombining)
//	defer bar.Finish()
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}

// NewSilentProgressBar creates a progress bar that renders nothing
func NewSilentProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total, progressbar.OptionSetVisibility(false))
}
