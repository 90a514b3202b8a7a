package cli

import "strings"

// Complete returns shell completions for toComplete, given the tokens
// typed before it.
//
// Nothing is offered for the word itself. A token starting with "-"
// completes to option names, each followed by a tab and its help text.
// Right after an option with a fixed set of values, such as -s or -p,
// those values are offered.
func Complete(args []string, toComplete string) []string {
	if len(args) == 0 {
		return nil
	}

	if looksLikeOption(toComplete) {
		var out []string
		for _, o := range options {
			for _, name := range o.flagNames() {
				if strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
					out = append(out, name+"\t"+o.help)
				}
			}
		}
		return out
	}

	last := args[len(args)-1]
	if !looksLikeOption(last) {
		return nil
	}
	o := lookupOption(normalize(last))
	if o == nil {
		return nil
	}

	var out []string
	for _, v := range o.values {
		if strings.HasPrefix(v, toComplete) {
			out = append(out, v)
		}
	}
	return out
}
