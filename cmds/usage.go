package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(os.Stdout, p.commands, 0)
}

func printCommands(w *os.File, commands map[string]*Command, indent int) {
	// aliases map to the shared *Command, print each once
	printed := make(map[*Command][]string)
	var order []*Command

	var sorted []string
	for name := range commands {
		sorted = append(sorted, name)
	}
	slices.Sort(sorted)

	for _, name := range sorted {
		command := commands[name]
		if command == nil {
			continue
		}
		if _, ok := printed[command]; !ok {
			order = append(order, command)
		}
		printed[command] = append(printed[command], name)
	}

	for _, command := range order {
		fmt.Fprintf(w, "%s%s",
			strings.Repeat("  ", indent),
			strings.Join(printed[command], " | "),
		)
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintf(w, "\n")
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, indent+1)
		}
	}
}
