package headlines

import (
	"fmt"
	"io"
	"strings"
)

const (
	countLineFormat = "抓取到 %d 个标题：\n\n"
	titleLineFormat = "%d. %s\n"
	notFoundMessage = "未能提取到标题"
	fallbackNotice  = "未找到标题，尝试备用模式..."
)

// Render writes the numbered title list to w, or the not-found message when
// titles is empty. Titles are trimmed of surrounding whitespace here; order
// and content are otherwise preserved.
func Render(w io.Writer, titles []string) {
	if len(titles) == 0 {
		fmt.Fprintln(w, notFoundMessage)
		return
	}

	fmt.Fprintf(w, countLineFormat, len(titles))
	for i, title := range titles {
		fmt.Fprintf(w, titleLineFormat, i+1, strings.TrimSpace(title))
	}
}

// FallbackNotice announces that the primary pattern found nothing and the
// looser pass is being tried.
func FallbackNotice(w io.Writer) {
	fmt.Fprintln(w, fallbackNotice)
}
