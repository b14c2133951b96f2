package puzzle

import "strings"

var helpSections = []string{
	`=== YAML format ===
Extensions: .yaml / .yml

Structure:
  - top-level key "bottles" holds the list of bottles
  - each bottle is a list of colour names (bottom to top), or null / [] for an empty bottle

Example (at least 4 bottles):
  bottles:
    - [red, blue, red, blue]
    - [green, green, yellow, yellow]
    - [blue, red, yellow, green]
    - [yellow, green, blue, red]
    - null
    - []`,

	`=== JSON format ===
Extension: .json

Structure:
  - top-level object {"bottles": [...]}
  - each bottle is an array of colour names (bottom to top), or [] for an empty bottle

Example (at least 4 bottles):
  {
    "bottles": [
      ["red", "blue", "red", "blue"],
      ["green", "green", "yellow", "yellow"],
      ["blue", "red", "yellow", "green"],
      ["yellow", "green", "blue", "red"],
      []
    ]
  }`,

	`=== Text format ===
Extensions: anything else (.txt, ...)

Structure:
  - one line per bottle, colour names separated by spaces (bottom to top)
  - the keyword (empty) denotes an empty bottle
  - blank lines are ignored

Example (at least 4 bottles):
  red blue red blue
  green green yellow yellow
  blue red yellow green
  yellow green blue red
  (empty)`,

	`=== Common constraints ===
Bottles: at least 4, at most 20
Capacity: every non-empty bottle must hold the same number of segments
Colour names: any string without whitespace
Each colour's total must be a multiple of the capacity
Format detection by extension:
  .yaml / .yml -> YAML
  .json        -> JSON
  other        -> text`,
}

// FormatHelp describes every accepted input format and the shared constraints.
func FormatHelp() string {
	return strings.Join(helpSections, "\n\n")
}
