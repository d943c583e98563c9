package composer

import (
	"fmt"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
)

// defaultCaptionNotes stands in for the memory's notes when none were
// written.
const defaultCaptionNotes = "A moment worth remembering"

// captionHashtags is the fixed tag line appended to every generated caption.
const captionHashtags = "#ScrapebookOfMemories #CapturedMoments #MemoryLane"

// Caption generates the share caption for a memory: the formatted capture
// date, the memory's notes (or a fixed placeholder when empty), and the
// fixed hashtag set. Pure string formatting; the memory is never mutated.
func Caption(memory *domain.Memory) string {
	notes := memory.Notes
	if notes == "" {
		notes = defaultCaptionNotes
	}
	return fmt.Sprintf("📸 Memory from %s\n\n%s\n\n%s",
		domain.DisplayDate(memory.CapturedAt), notes, captionHashtags)
}
