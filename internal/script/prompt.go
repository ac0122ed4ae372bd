package script

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the narrator prompt for the chat model. The
// timeframe reads as days under four weeks and as weeks at or above.
func BuildPrompt(document, topic string, timeframeDays, targetWords int) string {
	timeframe := fmt.Sprintf("%d days", timeframeDays)
	if timeframeDays >= 28 {
		timeframe = fmt.Sprintf("%d weeks", timeframeDays/7)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional podcast narrator creating an audio essay about %s in venture capital.\n\n", topic)
	b.WriteString("SOURCE MATERIAL:\n")
	fmt.Fprintf(&b, "The following is a collection of blog posts from prominent venture capitalists over the past %s:\n\n", timeframe)
	b.WriteString(document)
	b.WriteString("\n\nREQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. Synthesize the key themes, trends, and sentiment about %s across all sources\n", topic)
	b.WriteString("2. Use a conversational, lecture-style narrative voice (NOT bullet points or lists)\n")
	b.WriteString("3. Attribute specific ideas to their sources naturally (e.g., \"As Fred Wilson noted...\")\n")
	fmt.Fprintf(&b, "4. Target %d words (approximately 12-15 minutes when spoken)\n", targetWords)
	b.WriteString("5. Structure:\n")
	b.WriteString("   - Intro (30 seconds): Set the context and topic\n")
	b.WriteString("   - Main themes (10-12 minutes): Discuss 3-5 key themes with evidence from sources\n")
	b.WriteString("   - Conclusion (90 seconds): Synthesize insights and forward-looking perspective\n")
	b.WriteString("6. Avoid:\n")
	b.WriteString("   - Bullet points or numbered lists\n")
	b.WriteString("   - Meta-commentary about the podcast itself (don't say \"in this podcast\" or \"welcome listeners\")\n")
	b.WriteString("   - Overly promotional language\n")
	b.WriteString("   - Repetitive phrasing\n\n")
	b.WriteString("OUTPUT:\n")
	b.WriteString("Write a complete podcast script ready for text-to-speech conversion. The script should flow naturally as spoken word.\n")
	b.WriteString("Start directly with the content - no title, headers, or formatting markers.\n")

	return b.String()
}
