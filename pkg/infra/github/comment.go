package github

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
)

const stickyHeader = "<!-- cihooks -->"

func isStickyComment(body string) bool {
	return strings.HasPrefix(body, stickyHeader)
}

func sectionStart(tag string) string {
	return fmt.Sprintf("<!-- cihooks:%s:start -->", tag)
}

func sectionEnd(tag string) string {
	return fmt.Sprintf("<!-- cihooks:%s:end -->", tag)
}

func renderSection(s model.CommentSection) string {
	return sectionStart(s.Tag) + "\n" + s.Body + "\n" + sectionEnd(s.Tag)
}

// mergeSections replaces the section of each tag in body, or appends it when
// the tag is not present. Sections owned by other tags are kept untouched.
func mergeSections(body string, sections []model.CommentSection) string {
	if !isStickyComment(body) {
		body = stickyHeader
	}

	for _, s := range sections {
		start, end := sectionStart(s.Tag), sectionEnd(s.Tag)
		i := strings.Index(body, start)
		j := strings.Index(body, end)
		if i >= 0 && j > i {
			body = body[:i] + renderSection(s) + body[j+len(end):]
			continue
		}
		body = body + "\n" + renderSection(s)
	}

	return body
}
