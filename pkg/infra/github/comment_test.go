package github

import (
	"strings"
	"testing"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestMergeSections(t *testing.T) {
	team := model.CommentSection{Tag: "team", Body: "@org/team please, take a look"}

	t.Run("new comment", func(t *testing.T) {
		body := mergeSections("", []model.CommentSection{team})
		gt.True(t, isStickyComment(body))
		gt.True(t, strings.Contains(body, "<!-- cihooks:team:start -->\n@org/team please, take a look\n<!-- cihooks:team:end -->"))
	})

	t.Run("replace existing section", func(t *testing.T) {
		body := mergeSections("", []model.CommentSection{{Tag: "team", Body: "old"}})
		body = mergeSections(body, []model.CommentSection{team})

		gt.False(t, strings.Contains(body, "old"))
		gt.Number(t, strings.Count(body, sectionStart("team"))).Equal(1)
	})

	t.Run("keep other sections", func(t *testing.T) {
		body := mergeSections("", []model.CommentSection{{Tag: "other", Body: "keep me"}})
		body = mergeSections(body, []model.CommentSection{team})

		gt.True(t, strings.Contains(body, "keep me"))
		gt.True(t, strings.Contains(body, "@org/team"))
		gt.True(t, strings.Index(body, "keep me") < strings.Index(body, "@org/team"))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := mergeSections("", []model.CommentSection{team})
		twice := mergeSections(once, []model.CommentSection{team})
		gt.Value(t, twice).Equal(once)
	})
}
