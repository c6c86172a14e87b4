package service

// DefaultPrompt pre-seeds the prompt field of every fresh session.
const DefaultPrompt = "Make the image look like a watercolor painting"

// ExamplePrompts is the canned instruction list offered by the UI dropdown.
// Choosing one overwrites the editable prompt verbatim.
var ExamplePrompts = []string{
	"Make the image look like a watercolor painting",
	"Turn the background into a sunset over the ocean",
	"Add a party hat on the main subject",
	"Convert the photo to a black and white film look",
	"Make it look like it was taken at night",
	"Replace the sky with a starry galaxy",
}
