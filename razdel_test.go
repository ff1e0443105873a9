package razdel

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestSentenize_MultiSentence(t *testing.T) {
	seg := New()

	got := seg.Sentenize("Первое. Второе. Третье.")
	want := []Sentence{
		{Text: "Первое.", Start: 0, End: 7},
		{Text: "Второе.", Start: 8, End: 15},
		{Text: "Третье.", Start: 16, End: 23},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentenize() = %+v, want %+v", got, want)
	}
}

func TestSentenize_SingleSentence(t *testing.T) {
	seg := New()

	// The abbreviation "г." must not split the sentence; the whole
	// text is one sentence ending at the text end.
	got := seg.Sentenize("Он родился в 1799 г. в Москве.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %+v", len(got), got)
	}
	if got[0].Start != 0 || got[0].End != 30 {
		t.Errorf("sentence span = [%d:%d), want [0:30)", got[0].Start, got[0].End)
	}
}

func TestSentenize_Initials(t *testing.T) {
	seg := New()

	got := seg.Sentenize("А. С. Пушкин - великий русский поэт.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %+v", len(got), got)
	}
}

func TestSentenize_Empty(t *testing.T) {
	seg := New()

	if got := seg.Sentenize(""); got != nil {
		t.Errorf("Sentenize(\"\") = %+v, want nil", got)
	}
	if got := seg.Sentenize("   \n\t  "); got != nil {
		t.Errorf("Sentenize(whitespace) = %+v, want nil", got)
	}
}

func TestSentenize_OffsetsMatchOriginal(t *testing.T) {
	seg := New()

	texts := []string{
		"Первое. Второе. Третье.",
		"Конец абзаца.\n\nНовый абзац тут.",
		"Куда?! Не знаю. Число равно 3.14 и точка.",
	}

	for _, text := range texts {
		runes := []rune(text)
		var prevEnd int
		for _, s := range seg.Sentenize(text) {
			if s.Start < prevEnd {
				t.Errorf("%q: sentence spans overlap at %d", text, s.Start)
			}
			if s.End > len(runes) {
				t.Fatalf("%q: End %d past text length %d", text, s.End, len(runes))
			}
			if got := string(runes[s.Start:s.End]); got != s.Text {
				t.Errorf("%q: span [%d:%d) = %q, want %q", text, s.Start, s.End, got, s.Text)
			}
			prevEnd = s.End
		}
	}
}

func TestSegment(t *testing.T) {
	seg := New()

	got := seg.Segment("Первое. Второе. Третье.")
	want := []string{"Первое.", "Второе.", "Третье."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %v, want %v", got, want)
	}
}

func TestSegmentWithBoundaries(t *testing.T) {
	seg := New()

	sentences, boundaries := seg.SegmentWithBoundaries("Первое. Второе. Третье.")
	if want := []string{"Первое.", "Второе.", "Третье."}; !reflect.DeepEqual(sentences, want) {
		t.Errorf("sentences = %v, want %v", sentences, want)
	}
	if want := []int{8, 16, 23}; !reflect.DeepEqual(boundaries, want) {
		t.Errorf("boundaries = %v, want %v", boundaries, want)
	}

	sentences, boundaries = seg.SegmentWithBoundaries("")
	if sentences != nil || boundaries != nil {
		t.Errorf("empty text: got %v, %v, want nil, nil", sentences, boundaries)
	}
}

func TestFindBoundaries_PrefixStability(t *testing.T) {
	seg := New()

	full := "Первое предложение готово. Второе предложение готово. Третье предложение готово."
	prefix := string([]rune(full)[:54])

	fullBounds := seg.FindBoundaries(full)
	prefixBounds := seg.FindBoundaries(prefix)

	// The initials check inspects a symmetric 20-rune window, so only
	// boundaries more than 20 runes before the prefix end are
	// guaranteed stable under extension.
	limit := len([]rune(prefix)) - 20
	stable := func(bounds []int) []int {
		var out []int
		for _, b := range bounds {
			if b < limit {
				out = append(out, b)
			}
		}
		return out
	}

	if got, want := stable(prefixBounds), stable(fullBounds); !reflect.DeepEqual(got, want) {
		t.Errorf("stable prefix boundaries = %v, want %v", got, want)
	}
}

func TestSentenize_RejoinReconstructs(t *testing.T) {
	seg := New()

	text := "Первое предложение готово. Второе тоже! Третье под вопросом?\n\nЧетвёртое закрывает."
	var pieces []string
	for _, s := range seg.Sentenize(text) {
		pieces = append(pieces, s.Text)
	}

	got := strings.Join(strings.Fields(strings.Join(pieces, " ")), " ")
	want := strings.Join(strings.Fields(text), " ")
	if got != want {
		t.Errorf("rejoined = %q, want %q", got, want)
	}
}

func TestQualityScore_Bounds(t *testing.T) {
	seg := New()

	text := "Первое предложение готово. Второе предложение готово тоже."
	boundaries := seg.FindBoundaries(text)

	if got := seg.QualityScore(text, boundaries); got != 1.0 {
		t.Errorf("QualityScore() = %v, want 1.0", got)
	}
	if got := seg.QualityScore(text, nil); got != 0.0 {
		t.Errorf("QualityScore(no boundaries) = %v, want 0.0", got)
	}
}

func TestWithAbbreviations(t *testing.T) {
	text := "Московское изд-во. Новая книга."

	if got := New().Segment(text); len(got) != 2 {
		t.Errorf("default segmenter: got %d sentences, want 2", len(got))
	}
	if got := New(WithAbbreviations("изд-во")).Segment(text); len(got) != 1 {
		t.Errorf("extended segmenter: got %d sentences, want 1", len(got))
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	text := "Первое. Второе."

	if got := Segment(text); len(got) != 2 {
		t.Errorf("Segment() = %v, want 2 sentences", got)
	}
	if got := Sentenize(text); len(got) != 2 {
		t.Errorf("Sentenize() = %v, want 2 sentences", got)
	}
	if got := FindBoundaries(text); !reflect.DeepEqual(got, []int{8}) {
		t.Errorf("FindBoundaries() = %v, want [8]", got)
	}
	if got := QualityScore(text, FindBoundaries(text)); got < 0.0 || got > 1.0 {
		t.Errorf("QualityScore() = %v, out of [0,1]", got)
	}
}

func TestSegmenter_ConcurrentUse(t *testing.T) {
	seg := New()
	text := "Первое. Второе. Третье. Он родился в 1799 г. в Москве."
	want := seg.Segment(text)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := seg.Segment(text); !reflect.DeepEqual(got, want) {
					t.Errorf("concurrent Segment() = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
