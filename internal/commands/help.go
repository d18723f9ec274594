package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for tminus",
	Long:  `Display detailed help for all tminus commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
████████╗    ███╗   ███╗██╗███╗   ██╗██╗   ██╗███████╗
╚══██╔══╝    ████╗ ████║██║████╗  ██║██║   ██║██╔════╝
   ██║ █████╗██╔████╔██║██║██╔██╗ ██║██║   ██║███████╗
   ██║ ╚════╝██║╚██╔╝██║██║██║╚██╗██║██║   ██║╚════██║
   ██║       ██║ ╚═╝ ██║██║██║ ╚████║╚██████╔╝███████║
   ╚═╝       ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚══════╝

tminus - Countdown dashboard for the terminal

COMMANDS:

  (no command)            Open the dashboard

    Dashboard keys:
      tab/←/→       Select countdown
      a             Add countdown
      e / enter     Edit selected (enter restores a badge)
      m             Minimize / restore
      x             Delete
      H/J/K/L       Nudge card (also drag the card header)
      /             Fuzzy search
      y             Copy summary to clipboard
      s             Settings (badge mode, colors)
      q             Quit

  add [description]       Create a countdown with smart parsing
    -t, --title           Title
    -s, --start           Start date
    -d, --target          Target date
    -c, --color           Title color (#RRGGBB)
    -m, --minimized       Start minimized

    Smart syntax:
      due:3days     Target date
      from:now      Start date
      #FF8800       Title color
      !min          Start minimized

    Dates: YYYY-MM-DDTHH:MM, dd/mm/yyyy [HH:MM], now, 90m, 2h, 3 days, 2w

    Example:
      tminus add "Exam day due:3days #FF8800"

  ls                      List countdowns
    --json                JSON output

  edit <id>               Edit a countdown (opens the editor without flags)
  rm <id>                 Delete a countdown
  minimize <id>           Minimize to the dock
  restore <id>            Restore to a full card

  search <query>          Fuzzy-search titles
    -l, --limit           Limit results
    --json                JSON output

  theme                   Show theme settings
  theme set               Change theme
    --mode                default|random|title
    --time-color          Number color
    --bar-color           Progress bar color
  theme reset             Restore defaults

  export [file]           Export countdowns and theme as YAML
  import <file>           Import a YAML export
    --replace             Replace instead of append
    --theme               Also import theme

  bingo                   Show the BINGO board
  bingo toggle <1-25>     Mark a cell
  bingo fill <file>       Fill from a file, one item per line
  bingo title <text>      Rename the board
  bingo reset             Clear the board

  version                 Show version
  help                    Show this help

IDs: the 8 characters shown by 'ls', or any unique prefix or suffix.

GLOBAL FLAGS:
  --config                Config file (default: ~/.config/tminus/tminus.yml)
  --db                    Database path override

`)
}
