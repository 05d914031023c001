package model

import "time"

// Seed data for a fresh dashboard. These are returned from functions (not
// package vars) so CreatedAt stamps are relative to first launch and callers
// can mutate the slices freely.

func day(n int) int64 {
	return time.Now().UnixMilli() - int64(n)*24*60*60*1000
}

func DefaultPrompts() []Prompt {
	return []Prompt{
		{
			ID:    "prompt-1",
			Title: "Explain Like I'm 5",
			Template: "Explain [CONCEPT] in simple terms that a beginner could understand.\n\n" +
				"Use analogies and real-world examples. Break it down step by step.\n\n" +
				"Concept I want to understand: [PASTE CONCEPT HERE]",
			Category:  "Learning",
			Tags:      []string{"explanation", "beginner", "concepts"},
			CreatedAt: day(9),
		},
		{
			ID:    "prompt-2",
			Title: "What Does This Code Do?",
			Template: "I'm looking at this code and trying to understand what it does:\n\n" +
				"[PASTE CODE HERE]\n\n" +
				"Can you:\n" +
				"1. Explain what this code does in plain English\n" +
				"2. Break down each part step-by-step\n" +
				"3. Explain any concepts I should know",
			Category:  "Learning",
			Tags:      []string{"code-review", "understanding", "beginner"},
			CreatedAt: day(8),
		},
		{
			ID:    "prompt-3",
			Title: "Debug My Code",
			Template: "My code isn't working as expected.\n\n" +
				"Expected behavior: [DESCRIBE]\n" +
				"Actual behavior: [DESCRIBE]\n\n" +
				"Code:\n[PASTE CODE HERE]\n\n" +
				"Walk me through likely causes and how to narrow them down.",
			Category:  "Debugging",
			Tags:      []string{"debugging", "troubleshooting"},
			CreatedAt: day(6),
		},
		{
			ID:    "prompt-4",
			Title: "Review for Edge Cases",
			Template: "Review this function for edge cases I might have missed:\n\n" +
				"[PASTE CODE HERE]\n\n" +
				"List each edge case with a concrete failing input.",
			Category:  "Code Review",
			Tags:      []string{"code-review", "edge-cases"},
			CreatedAt: day(3),
		},
	}
}

func DefaultSnippets() []Snippet {
	return []Snippet{
		{
			ID:    "snippet-1",
			Title: "Basic useState Hook",
			Code: "const [count, setCount] = useState(0);\n\n" +
				"// Update based on previous state (safer)\n" +
				"setCount(prevCount => prevCount + 1);",
			Language:    "javascript",
			Tags:        []string{"react", "hooks", "state", "beginner"},
			Description: "Basic React state management with useState",
			Difficulty:  "beginner",
			CreatedAt:   day(10),
		},
		{
			ID:    "snippet-2",
			Title: "Debounced Search Input",
			Code: "const [query, setQuery] = useState('');\n" +
				"const debounced = useDebounce(query, 300);\n\n" +
				"useEffect(() => { search(debounced); }, [debounced]);",
			Language:    "javascript",
			Tags:        []string{"react", "hooks", "debounce"},
			Description: "Delay expensive work until typing pauses",
			Difficulty:  "intermediate",
			CreatedAt:   day(7),
		},
		{
			ID:    "snippet-3",
			Title: "Context With Timeout",
			Code: "ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)\n" +
				"defer cancel()\n\n" +
				"if err := doWork(ctx); err != nil {\n" +
				"\treturn err\n" +
				"}",
			Language:    "go",
			Tags:        []string{"go", "context", "timeout"},
			Description: "Bound a blocking call with a deadline",
			Difficulty:  "intermediate",
			CreatedAt:   day(4),
		},
		{
			ID:    "snippet-4",
			Title: "Table-Driven Test",
			Code: "cases := []struct {\n\tname string\n\tin   string\n\twant int\n}{\n" +
				"\t{\"empty\", \"\", 0},\n}\n" +
				"for _, tc := range cases {\n" +
				"\tt.Run(tc.name, func(t *testing.T) {\n" +
				"\t\tif got := f(tc.in); got != tc.want {\n" +
				"\t\t\tt.Fatalf(\"got %d want %d\", got, tc.want)\n" +
				"\t\t}\n\t})\n}",
			Language:    "go",
			Tags:        []string{"go", "testing"},
			Description: "Standard table-driven test scaffold",
			Difficulty:  "beginner",
			CreatedAt:   day(2),
		},
	}
}

func DefaultLearningLogs() []LogEntry {
	return []LogEntry{
		{
			ID:          "log-1",
			Week:        "Week 1",
			Date:        "Week of Oct 1, 2025",
			Topics:      []string{"AI Fluency Framework", "4D Model Introduction"},
			Notes:       "The 4D framework: Delegation, Description, Discernment, Diligence. Fluency is knowing when to use the tools, not just how.",
			Tags:        []string{"ai-fluency", "foundations", "framework"},
			KeyTakeaway: "AI is a thinking partner, not just a tool for automation.",
			CreatedAt:   day(49),
			UpdatedAt:   day(49),
		},
		{
			ID:          "log-2",
			Week:        "Week 2",
			Date:        "Week of Oct 8, 2025",
			Topics:      []string{"Delegation", "Platform Awareness", "Task Breakdown"},
			Notes:       "When to use AI vs human work; capabilities and limits of different systems; splitting tasks into AI-suitable and human-suitable parts.",
			Tags:        []string{"delegation", "ai-tools", "planning"},
			KeyTakeaway: "Human judgment matters most for creative vision and ethical decisions.",
			CreatedAt:   day(42),
			UpdatedAt:   day(42),
		},
	}
}

func DefaultLinks() []Link {
	return []Link{
		{ID: "link-1", Title: "GitHub", URL: "https://github.com", Category: "Tools", CreatedAt: day(7)},
		{ID: "link-2", Title: "Claude AI", URL: "https://claude.ai", Category: "Tools", CreatedAt: day(6)},
		{ID: "link-3", Title: "Stack Overflow", URL: "https://stackoverflow.com", Category: "Docs", CreatedAt: day(5)},
		{ID: "link-4", Title: "MDN Web Docs", URL: "https://developer.mozilla.org", Category: "Docs", CreatedAt: day(4)},
	}
}
