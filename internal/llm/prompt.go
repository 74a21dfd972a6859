// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package llm

import (
	"strings"
)

// promptTemplate asks for exactly one dish name. The trailing space after
// "options." is part of the published prompt.
const promptTemplate = `You are a helpful food recommendation assistant. Your task is to suggest exactly one dish from today's menu based on the user's preferences.

User's favorite meals: {favorite_menu}

Today's available meals: {todays_menu}

Based on the user's favorite meals, please recommend exactly ONE meal from today's available options. 
Consider:
- Similarity to the user's favorite meals
- Flavor profiles that match their preferences
- Availability in today's menu

IMPORTANT: You must respond with ONLY the exact name of one dish from today's menu. Do not include any explanations, additional text, punctuation, or formatting. Just return the dish name exactly as it appears in today's menu.

Example format: Spaghetti Carbonara

Recommendation:`

// listSeparator joins meal names inside the prompt.
const listSeparator = ", "

// BuildPrompt renders the prompt for the given meal lists.
func BuildPrompt(favorites, todays []string) string {
	r := strings.NewReplacer(
		"{favorite_menu}", strings.Join(favorites, listSeparator),
		"{todays_menu}", strings.Join(todays, listSeparator),
	)
	return r.Replace(promptTemplate)
}
