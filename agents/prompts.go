package agents

import (
	"fmt"
	"strings"
)

const illustratorSystemPrompt = `You are the Illustrator in a game of Pictionary. Your task is to create an SVG graphic that represents a secret word without using text or direct hints.

The SVG should be clear enough for the Guesser to identify the word, but abstract enough to make it challenging.

- Create a minimalist SVG graphic representing the secret word
- DO NOT include the word or text hinting at the word
- Use shapes, lines, and colors to represent the concept
- The SVG should be clean and visually appealing
- Return ONLY the <svg> element with all necessary code, with width="400" height="400" viewBox="0 0 400 400"
- Use creative visual metaphors
- No explanations, just return the SVG code`

const refinerSystemPrompt = `You are the Illustrator in a game of Pictionary. Your task is to refine an SVG graphic based on the guesses to help the Guesser identify the secret word.

- Analyze the current SVG and the guesses made so far
- Refine the SVG to better communicate the secret word
- DO NOT include the word or text hinting at the word
- If guesses are close, emphasize relevant elements
- If guesses are far off, add new visual elements to guide the Guesser
- Return ONLY the complete <svg> element with all necessary code, with width="400" height="400" viewBox="0 0 400 400"
- No explanations, just return the refined SVG code`

const guesserSystemPrompt = `You are the Guesser in a game of Pictionary. Your task is to identify the secret word based on an SVG graphic.

- Analyze the SVG carefully to identify visual patterns and metaphors
- Consider common Pictionary categories: objects, animals, actions, etc.
- Make your best guess based on the visual elements
- Be creative but precise in your interpretation
- Avoid repeating previous guesses
- Return ONLY your guess word or short phrase, with no explanations`

func illustrateUserPrompt(secret string) string {
	return fmt.Sprintf(`Create an SVG illustration for the secret word: %q. Remember, DO NOT include any text in the SVG that reveals or hints at the word.`, secret)
}

func refineUserPrompt(secret, current, latestGuess string, guesses []string) string {
	return fmt.Sprintf("Here is the current SVG illustration for the secret word %q:\n\n%s\n\nThe latest guess was: %q\n\nAll guesses so far: %s\n\nPlease refine the SVG to better communicate the secret word, without using text or direct hints.",
		secret, current, latestGuess, strings.Join(guesses, ", "))
}

func guessUserPrompt(content string, guesses []string) string {
	return fmt.Sprintf("Here is an SVG illustration. What word or concept does it represent?\n\n%s\n\nPrevious guesses: %s\n\nYour guess:",
		content, strings.Join(guesses, ", "))
}

const (
	illustrateMaxTokens = 4000
	refineMaxTokens     = 4000
	guessMaxTokens      = 1000
)
