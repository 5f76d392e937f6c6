package orchestrator

import "fmt"

// UnnamedFile is displayed when the endpoint accepts a payload without
// reporting where it was stored.
const UnnamedFile = "(unnamed)"

const (
	openLinkMessage   = "Would you like to view the submitted changes?"
	unexpectedMessage = "⚠️ An unexpected error occurred.\n\nWould you like to download the corrections as a JSON file instead?"
	emptyMessage      = "No corrections to submit."
)

func successMessage(s summary, file string) string {
	if file == "" {
		file = UnnamedFile
	}
	return fmt.Sprintf("✓ Successfully submitted corrections!\n\n"+
		"%d corrections saved across %d chapters.\n\n"+
		"File: %s\n\n"+
		"A backup JSON file will also be saved to your computer.", s.items, s.chapters, file)
}

func fallbackMessage(reason string) string {
	return fmt.Sprintf("⚠️ Could not submit corrections: %s\n\n"+
		"Would you like to download the corrections as a JSON file instead?\n"+
		"You can manually share this file with the project maintainer.", reason)
}

func downloadedMessage(s summary) string {
	return fmt.Sprintf("✓ Downloaded corrections for %d items across %d chapters!", s.items, s.chapters)
}

func exportFailedMessage(err error) string {
	return fmt.Sprintf("⚠️ Could not save the corrections file: %v", err)
}

func linkMessage(URL string) string {
	return "Submitted changes: " + URL
}
