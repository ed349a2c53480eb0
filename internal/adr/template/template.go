// Package template holds the static ADR template catalog. Each template
// pairs a display shape with the system prompt used to steer model output
// toward that shape.
package template

type Template struct {
	ID           string
	Name         string
	Description  string
	PromptBody   string
	SystemPrompt string
}

const DefaultID = "standard"

const standardSystemPrompt = `You are an expert in software architecture and your task is to create a well-structured Architectural Decision Record (ADR) based on the user's input.

An ADR should document:
1. Title - a clear, concise title for the decision (ADR 0001: <title>)
2. Status - current state (Proposed, Accepted, Deprecated, Superseded)
3. Context - the problem being addressed and relevant factors
4. Decision - what decision was made
5. Consequences - both positive and negative implications
6. Alternatives Considered - other options and why they were rejected

Format the ADR in clean markdown with proper headings, lists, and sections. Make the content clear, concise and professional.
Use technical accuracy and provide specific, actionable recommendations.

Your response should be formatted in markdown.`

const madrSystemPrompt = `You are an expert in software architecture and your task is to create a Markdown Architectural Decision Record (MADR) based on the user's input.

The MADR format follows this structure:
1. Title - a clear, concise title for the decision
2. Metadata - status, deciders, date, and related technical story
3. Context and Problem Statement - the issue that is motivating this decision
4. Decision Drivers - key forces influencing the decision
5. Considered Options - a list of all options considered
6. Decision Outcome - chosen option with justification
7. Positive and Negative Consequences - impacts of the decision
8. Links - references and related decisions

Format the ADR in clean markdown with proper headings, bullet points, and sections. Make the content clear, concise and professional.
Ensure technical accuracy and provide specific, actionable recommendations.

Your response should be formatted in markdown.`

const nygardSystemPrompt = `You are an expert in software architecture and your task is to create an Architectural Decision Record (ADR) following Michael Nygard's original template.

An ADR in Nygard's format should document:
1. Title - a clear, concise title for the decision
2. Status - current state (Proposed, Accepted, Deprecated, Superseded)
3. Context - the problem being addressed and relevant factors
4. Decision - what decision was made
5. Consequences - all implications (both positive and negative)

Keep the format simple and direct. Focus on clearly communicating the architectural decision.
Format the ADR in clean markdown with proper headings, lists, and sections.

Your response should be formatted in markdown.`

const yStatementsSystemPrompt = `You are an expert in software architecture and your task is to create an Architectural Decision Record (ADR) using the Y-Statements format.

A Y-Statement ADR follows this structure:
"In the context of <use case/user story u>, facing <concern c>, we decided for <option o> to achieve <quality q>, accepting <downside d>."

Expand on each of these components in your response:
1. Title - a clear, concise title for the decision
2. Context - the use case or user story this decision applies to
3. Concern - the issue that is motivating this decision
4. Decision - what option was chosen
5. Rationale - what quality attribute this achieves
6. Consequence - what downside or trade-off this accepts

Keep the format simple and emphasize the cause-and-effect relationships.
Format the ADR in clean markdown with a heading for the title and then the Y-statement.
Then provide additional detail for each component of the Y-statement.

Your response should be formatted in markdown.`

const standardBody = `# Title: {title}

## Status
{status}

## Context
{context}

## Decision
{decision}

## Consequences

### Positive
{positiveConsequences}

### Negative
{negativeConsequences}

## Alternatives Considered
{alternatives}

## Additional Information
{additionalInfo}`

const madrBody = `# {title}

* Status: {status}
* Deciders: {deciders}
* Date: {date}
* Technical Story: {technicalStory}

## Context and Problem Statement

{context}

## Decision Drivers

* {driver1}
* {driver2}
* {driver3}

## Considered Options

* {option1}
* {option2}
* {option3}

## Decision Outcome

Chosen option: "{chosenOption}", because {justification}.

### Positive Consequences

* {positiveConsequence1}
* {positiveConsequence2}

### Negative Consequences

* {negativeConsequence1}
* {negativeConsequence2}

## Links

* {link1}
* {link2}`

const nygardBody = `# {title}

## Status
{status}

## Context
{context}

## Decision
{decision}

## Consequences
{consequences}`

const yStatementsBody = `# {title}

In the context of {context},
facing {concern},
we decided for {decision}
to achieve {rationale},
accepting {consequence}.`

var templates = map[string]Template{
	"standard": {
		ID:           "standard",
		Name:         "Standard",
		Description:  "Comprehensive template with positive/negative consequences and alternatives",
		PromptBody:   standardBody,
		SystemPrompt: standardSystemPrompt,
	},
	"madr": {
		ID:           "madr",
		Name:         "MADR",
		Description:  "Markdown ADR format with decision drivers and detailed metadata",
		PromptBody:   madrBody,
		SystemPrompt: madrSystemPrompt,
	},
	"nygard": {
		ID:           "nygard",
		Name:         "Nygard",
		Description:  "Original simplified ADR template by Michael Nygard",
		PromptBody:   nygardBody,
		SystemPrompt: nygardSystemPrompt,
	},
	"yStatements": {
		ID:           "yStatements",
		Name:         "Y-Statements",
		Description:  "Concise format focusing on context, decision and consequences",
		PromptBody:   yStatementsBody,
		SystemPrompt: yStatementsSystemPrompt,
	},
}

// Resolve returns the template for id, falling back to the standard
// template for empty or unknown ids. It never fails.
func Resolve(id string) Template {
	if t, ok := templates[id]; ok {
		return t
	}
	return templates[DefaultID]
}

// All returns the catalog in a stable order for listing.
func All() []Template {
	return []Template{
		templates["standard"],
		templates["madr"],
		templates["nygard"],
		templates["yStatements"],
	}
}
