package domain

// TaskNode is one entry of the task tree.
// Commands is keyed by "posix", "windows" or the generic "task" key.
type TaskNode struct {
	Commands map[string]string
	Children map[string]*TaskNode
}

// CommandFor returns the command to run on p. The platform key wins over the
// generic key; ok is false when the node has neither.
func (n *TaskNode) CommandFor(p Platform) (cmd string, ok bool) {
	if n == nil {
		return "", false
	}
	if cmd, ok = n.Commands[p.Key()]; ok {
		return cmd, true
	}
	cmd, ok = n.Commands[GenericKey]
	return cmd, ok
}

// Child returns the nested task called name.
func (n *TaskNode) Child(name string) (*TaskNode, bool) {
	if n == nil || n.Children == nil {
		return nil, false
	}
	child, ok := n.Children[name]
	return child, ok && child != nil
}

// TaskFile is a parsed klse.json.
type TaskFile struct {
	// Path is the file the tasks were read from.
	Path  string
	Tasks map[string]*TaskNode
}

// Lookup returns the top-level task called name.
func (f *TaskFile) Lookup(name string) (*TaskNode, bool) {
	if f == nil {
		return nil, false
	}
	node, ok := f.Tasks[name]
	return node, ok && node != nil
}

// TaskSequence is the list of tokens naming a path through the task tree.
type TaskSequence []string

// Resolution is the outcome of walking a TaskSequence through a TaskFile.
type Resolution struct {
	// Command is the shell command selected for the platform, verbatim.
	Command string
	// Path holds the tokens that were consumed, in order.
	Path []string
	// Unconsumed holds the trailing tokens that did not match a child.
	Unconsumed []string
	Node       *TaskNode
}
