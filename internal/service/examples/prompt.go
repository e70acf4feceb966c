package examples

import (
	"fmt"
	"strings"
)

// SentenceCount is how many example sentences the prompt asks for.
const SentenceCount = 3

func buildPrompt(en string, ja *string) string {
	var hint string
	if ja != nil && *ja != "" {
		hint = fmt.Sprintf("(意味: %s) ", *ja)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "英単語 \"%s\" %sを使った英語の例文を%dつ生成してください。\n", en, hint, SentenceCount)
	b.WriteString("各例文はシンプルで実用的で自然な表現にし、対応する日本語訳も提供してください。\n")
	b.WriteString("各例文は長くても10語程度でお願いします。\n\n")
	b.WriteString("出力形式:\n")
	for i := 1; i <= SentenceCount; i++ {
		fmt.Fprintf(&b, "%d. [英語例文%d]\n   [日本語訳%d]", i, i, i)
		if i < SentenceCount {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
