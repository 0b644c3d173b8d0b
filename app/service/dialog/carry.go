package dialog

import "strings"

const (
	// Context that carries temporal parameters across turns.
	preserveContextName = "preserve-parameters"

	// Queries shorter than this are assumed to come from a suggestion chip
	// tap, which sends only the destination name.
	shortQueryLimit = 15

	followUpLifespan = 10
	freshLifespan    = 1
)

type TurnSource int

const (
	// SourceCurrent means the turn brought its own temporal parameters.
	SourceCurrent TurnSource = iota
	// SourceCarried means they come from the persisted snapshot of an
	// earlier, longer turn.
	SourceCarried
)

type Classification struct {
	Source   TurnSource
	Lifespan int
}

// TurnClassifier decides whether a turn is a fresh request or a short
// follow-up that should reuse the previously captured parameters.
type TurnClassifier interface {
	Classify(queryText string) Classification
}

// LengthClassifier is the default heuristic: a chip tap produces a very
// short query ("Madrid"), a typed request a full sentence. Known to be a
// weak proxy, hence the interface above.
type LengthClassifier struct{}

func (LengthClassifier) Classify(queryText string) Classification {
	if len(queryText) < shortQueryLimit {
		return Classification{Source: SourceCarried, Lifespan: followUpLifespan}
	}

	return Classification{Source: SourceCurrent, Lifespan: freshLifespan}
}

// carriedParameters finds the persisted snapshot among the incoming
// contexts. Context names arrive fully qualified
// ("projects/.../sessions/.../contexts/preserve-parameters").
func carriedParameters(contexts []Context) map[string]any {
	for _, c := range contexts {
		if strings.HasSuffix(c.Name, "/contexts/"+preserveContextName) || c.Name == preserveContextName {
			return c.Parameters
		}
	}

	return nil
}

// snapshotContext builds the outgoing snapshot. Written on every turn, a new
// write replaces the prior snapshot for the session.
func snapshotContext(session string, lifespan int, params Parameters) Context {
	return Context{
		Name:          session + "/contexts/" + preserveContextName,
		LifespanCount: lifespan,
		Parameters:    params.snapshot(),
	}
}
