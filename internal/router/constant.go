package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Base system prompts per route. The dialect stabilizer's instructions
// are appended when the resolved dialect is a regional one.
const (
	promptPersona = `You are Sembang, a friendly Malaysian assistant fluent in Bahasa Melayu and English. Match the user's language.`

	promptDocument = promptPersona + `
The user attached a document. Ground every answer in the document content provided; say so plainly when the document does not contain the answer.`

	promptVision = promptPersona + `
The user attached an image. Describe and reason about the image content when answering.`

	promptWebResearch = promptPersona + `
The user wants fresh information from the web. Summarize the provided search results faithfully and cite the source sites.`

	promptSmalltalk = promptPersona + `
Keep the reply short, warm and conversational.`

	promptTask = promptPersona + `
The user wants something produced or done. Deliver the requested output directly, without preamble.`

	promptGeneralChat = promptPersona + `
Answer helpfully and concisely.`
)

// Decoding limits per route.
var decodingByRoute = map[RouteType]DecodingConfig{
	RouteDocument:    {MaxTokens: 1024, Temperature: 0.3},
	RouteVision:      {MaxTokens: 768, Temperature: 0.4},
	RouteWebResearch: {MaxTokens: 768, Temperature: 0.2},
	RouteSmalltalk:   {MaxTokens: 256, Temperature: 0.8},
	RouteTask:        {MaxTokens: 1024, Temperature: 0.5},
	RouteGeneralChat: {MaxTokens: 512, Temperature: 0.7},
}
