package analyzer

import (
	"encoding/json"
	"fmt"
)

const summarySystemPrompt = "You are an expert content summarizer who creates structured, informative summaries " +
	"that capture both the essence and important details of any text. Always follow the requested " +
	"format and maintain accuracy. Respond in the same language as the input text."

const topicSystemPrompt = "You are an expert text analyst who identifies key topics with precision. " +
	"Always respond with valid JSON array format."

const countSystemPrompt = "You are a meticulous text analyst who counts topic mentions with perfect accuracy. " +
	"Always respond with valid JSON. Take your time to count carefully."

func summaryPrompt(transcription string, targetLength int) string {
	return fmt.Sprintf(`Create a comprehensive yet concise summary of the following transcription.

## Instructions:
1. Target length: approximately %d words
2. Capture the main topic, key points, and important details
3. Preserve critical information, data, names, and conclusions
4. Include actionable items or next steps if mentioned
5. Maintain the logical flow of the original content
6. Respond in the same language as the transcription

## Transcription to Summarize:
%s

## Summary:
`, targetLength, transcription)
}

func topicIdentificationPrompt(transcription string, limit int) string {
	return fmt.Sprintf(`Analyze the following transcription and identify the 3-%d most prominent topics or themes discussed.

## Instructions:
1. Focus on substantial topics that are meaningfully discussed, not passing mentions
2. Use clear, descriptive topic names (2-4 words each) in the language of the transcription
3. Look for recurring themes, concepts, or subjects
4. Avoid overly broad topics like "general discussion" unless truly applicable

## Transcription to analyze:
%s

## Response Format:
Return ONLY a JSON array of topic names:
["Topic Name 1", "Topic Name 2", "Topic Name 3"]
`, limit, transcription)
}

func topicCountingPrompt(transcription string, topics []string) string {
	topicsJSON, _ := json.Marshal(topics)
	return fmt.Sprintf(`For each topic below, count how many times it is mentioned, referenced, or discussed in the transcription.

## Counting Rules:
1. Count direct mentions of the topic by name
2. Count synonyms and related terms
3. Count conceptual references that discuss the topic without naming it
4. Do not count articles, pronouns, or unrelated words

## Topics to count:
%s

## Transcription to analyze:
%s

## Response Format:
Return ONLY valid JSON in this exact format:
{"topics": [{"topic": "Topic Name", "mentions": 3}]}
`, string(topicsJSON), transcription)
}
