package render

import "strings"

// splitText 把文本拆成若干段，每段不超过 budget 字节。
// 优先按段落拆分，段落超长时按句子拆分，句子仍超长时硬切。
func splitText(text string, budget int) []string {
	if budget <= 0 {
		budget = 1
	}
	if len(text) <= budget {
		return []string{text}
	}

	var parts []string
	current := ""

	flush := func() {
		if current != "" {
			parts = append(parts, current)
			current = ""
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		joined := para
		if current != "" {
			joined = current + "\n\n" + para
		}
		if len(joined) <= budget {
			current = joined
			continue
		}
		flush()

		if len(para) <= budget {
			current = para
			continue
		}

		// 段落超长，按句子继续拆
		for _, sentence := range splitSentences(para) {
			joined = sentence
			if current != "" {
				joined = current + " " + sentence
			}
			if len(joined) <= budget {
				current = joined
				continue
			}
			flush()

			if len(sentence) <= budget {
				current = sentence
				continue
			}

			// 单句仍超长，按字符硬切
			for _, piece := range hardCut(sentence, budget) {
				parts = append(parts, piece)
			}
		}
	}
	flush()

	return parts
}

// splitSentences 按句末标点切分，标点保留在句子末尾
func splitSentences(text string) []string {
	var sentences []string
	var sb strings.Builder

	for _, r := range text {
		sb.WriteRune(r)
		switch r {
		case '.', '!', '?', '。', '！', '？', '\n':
			sentence := strings.TrimSpace(sb.String())
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			sb.Reset()
		}
	}
	if rest := strings.TrimSpace(sb.String()); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// hardCut 在字符边界上把文本切成不超过 budget 字节的片段
func hardCut(text string, budget int) []string {
	var pieces []string
	var sb strings.Builder

	for _, r := range text {
		if sb.Len()+len(string(r)) > budget {
			pieces = append(pieces, sb.String())
			sb.Reset()
		}
		sb.WriteRune(r)
	}
	if sb.Len() > 0 {
		pieces = append(pieces, sb.String())
	}
	return pieces
}
