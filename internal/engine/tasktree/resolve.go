// Package tasktree selects the command a task sequence names in a task file.
package tasktree

import (
	"strings"

	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve walks seq through file and returns the command to run on platform.
//
// The first token must name a top-level task. Each following token descends
// into the child of that name while one exists; the walk stops silently at
// the first token that does not match, and the remaining tokens are reported
// in Resolution.Unconsumed. seq is never modified.
func Resolve(file *domain.TaskFile, seq domain.TaskSequence, platform domain.Platform) (domain.Resolution, error) {
	if len(seq) == 0 {
		return domain.Resolution{}, zerr.Wrap(domain.ErrNoTaskProvided, "nothing to run")
	}

	tokens := append([]string(nil), seq...)

	node, ok := file.Lookup(tokens[0])
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "unknown task"), "task", tokens[0])
		if file != nil {
			err = zerr.With(err, "path", file.Path)
		}
		return domain.Resolution{}, err
	}

	consumed := 1
	for consumed < len(tokens) {
		child, ok := node.Child(tokens[consumed])
		if !ok {
			break
		}
		node = child
		consumed++
	}

	res := domain.Resolution{
		Path:       tokens[:consumed:consumed],
		Unconsumed: tokens[consumed:],
		Node:       node,
	}
	if len(res.Unconsumed) == 0 {
		res.Unconsumed = nil
	}

	cmd, ok := node.CommandFor(platform)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidTask, "no command for this platform"), "task", strings.Join(res.Path, " "))
		err = zerr.With(err, "platform", platform.Key())
		return res, zerr.With(err, "path", file.Path)
	}
	res.Command = cmd

	return res, nil
}
