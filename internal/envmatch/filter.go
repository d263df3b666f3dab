package envmatch

import (
	"log/slog"

	"github.com/google/cel-go/cel"
)

// filterEnv declares the variables available to selection filters: the
// four well-known properties as strings, plus the full property map.
// Example filter: osname == "linux" && props["vendor"] == "acme".
var filterEnv = func() *cel.Env {
	env, err := cel.NewEnv(
		cel.Variable(PropOSName, cel.StringType),
		cel.Variable(PropProcessor, cel.StringType),
		cel.Variable(PropOSVersion, cel.StringType),
		cel.Variable(PropLanguage, cel.StringType),
		cel.Variable("props", cel.MapType(cel.StringType, cel.StringType)),
	)
	if err != nil {
		panic(err)
	}
	return env
}()

// evalFilter evaluates a selection-filter expression. A filter that fails
// to compile, evaluate, or produce a bool does not match.
func (e *Environment) evalFilter(expr string) bool {
	ast, iss := filterEnv.Compile(expr)
	if iss != nil && iss.Err() != nil {
		e.logDebug("selection filter does not compile",
			slog.String("filter", expr), slog.String("error", iss.Err().Error()))
		return false
	}
	prg, err := filterEnv.Program(ast)
	if err != nil {
		e.logDebug("selection filter program error",
			slog.String("filter", expr), slog.String("error", err.Error()))
		return false
	}
	out, _, err := prg.Eval(map[string]any{
		PropOSName:    e.props[PropOSName],
		PropProcessor: e.props[PropProcessor],
		PropOSVersion: e.props[PropOSVersion],
		PropLanguage:  e.props[PropLanguage],
		"props":       e.props,
	})
	if err != nil {
		e.logDebug("selection filter evaluation error",
			slog.String("filter", expr), slog.String("error", err.Error()))
		return false
	}
	matched, ok := out.Value().(bool)
	return ok && matched
}

func (e *Environment) logDebug(msg string, attrs ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, attrs...)
	}
}
