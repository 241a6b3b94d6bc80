package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tplcache/internal/meta"
)

const bashCompletionScript = `# bash completion for tplcache
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tplcache()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "ls get render dump diff ns completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local output="--color -c --filter -f --output -o --sort -s --titles -t"
    local cache="--ext -e --namespace -n --recursive -r --autocrlf --no-autocrlf --slim"

    case "$cmd" in
        ls|get|diff)
            local opts="$output $cache"
            ;;
        render)
            local opts="$output $cache --data -d --html"
            ;;
        dump)
            local opts="$output $cache --query -q"
            ;;
        ns)
            local opts="$output"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$output"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--data" || "$prev" == "-d" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise complete the template directory
    COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    return 0
}

complete -F _tplcache tplcache
`

const zshCompletionScript = `#compdef tplcache

_tplcache() {
  local -a cmds
  cmds=(
    'ls:list templates'
    'get:print a template'
    'render:execute a template with data'
    'dump:print the cache as JSON'
    'diff:compare two template directories'
    'ns:list configured namespaces'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  local -a cache
  cache=(
  '(-e --ext)'{-e,--ext}'[template extension]:ext'
  '(-n --namespace)'{-n,--namespace}'[config namespace]:namespace'
  '(-r --recursive)'{-r,--recursive}'[descend into subdirectories]'
  '--autocrlf[normalize line endings]'
  '--slim[strip newlines and indentation]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tplcache commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    ls|get|diff)
      _arguments -C $common $cache '*:directory:_directories'
      ;;
    render)
      _arguments -C $common $cache \
        '(-d --data)'{-d,--data}'[data file]:file:_files' \
        '--html[html escaping]' \
        '*:directory:_directories'
      ;;
    dump)
      _arguments -C $common $cache \
        '(-q --query)'{-q,--query}'[gjson path]:path' \
        '*:directory:_directories'
      ;;
    ns)
      _arguments -C $common
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:directory:_directories'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tplcache tplcache
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	w := writer(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: tplcache completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tplcache completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
