package models

const (
	SpeechTypePlainText = "PlainText"
	CardTypeSimple      = "Simple"
)

// ResponseBuilder assembles a ResponseEnvelope. The zero value is an empty response.
type ResponseBuilder struct {
	resp Response
}

func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{}
}

func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = &OutputSpeech{Type: SpeechTypePlainText, Text: text}
	return b
}

// Reprompt keeps the session open and asks again with text if the user stays silent.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: SpeechTypePlainText, Text: text}}
	return b.EndSession(false)
}

func (b *ResponseBuilder) SimpleCard(title, content string) *ResponseBuilder {
	b.resp.Card = &Card{Type: CardTypeSimple, Title: title, Content: content}
	return b
}

func (b *ResponseBuilder) EndSession(end bool) *ResponseBuilder {
	b.resp.ShouldEndSession = &end
	return b
}

func (b *ResponseBuilder) Build() *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:  Version,
		Response: b.resp,
	}
}
