package entity

type RouteName string

const (
	RoutePerguntar RouteName = "perguntar"
	RouteCiborgue  RouteName = "ciborgue"
	RouteAlexa     RouteName = "alexa"
	RouteUI        RouteName = "ui"
	RouteQuiz      RouteName = "quiz"
)

func (r RouteName) String() string {
	return string(r)
}

type PromptStyle string

const (
	PromptDefault PromptStyle = "default"
	PromptShort   PromptStyle = "short"
)

// RouteProfile selects how a route talks to the upstream and whether it
// leaves a trace in the activity log.
type RouteProfile struct {
	Name   RouteName
	Prompt PromptStyle
	Record bool
}
