package faq_test

import (
	"strings"
	"testing"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/faq"
)

func TestReply_MatchesCategory(t *testing.T) {
	reply := faq.Reply("cursos")
	if reply == faq.Fallback {
		t.Error("expected a category match for 'cursos'")
	}
}

func TestReply_MatchesFullQuestion(t *testing.T) {
	reply := faq.Reply("Hola, ¿cómo accedo a los cursos?")
	if !strings.Contains(reply, "Ver Cursos") {
		t.Errorf("expected the course-access answer, got %q", reply)
	}
}

func TestReply_CaseInsensitive(t *testing.T) {
	if faq.Reply("CERTIFICADOS") == faq.Fallback {
		t.Error("expected case-insensitive category matching")
	}
}

func TestReply_FallbackOnNoMatch(t *testing.T) {
	if got := faq.Reply("xyzzy"); got != faq.Fallback {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := faq.Reply("   "); got != faq.Fallback {
		t.Errorf("expected fallback for blank query, got %q", got)
	}
}

func TestSuggestions(t *testing.T) {
	s := faq.Suggestions()
	if len(s) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(s))
	}
	for _, cat := range s {
		if faq.Reply(cat) == faq.Fallback {
			t.Errorf("suggestion %q should always match an entry", cat)
		}
	}
}
