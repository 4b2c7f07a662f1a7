package main

import (
	"flag"
	"fmt"
	"io"
)

func completionCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: folio completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(stderr, "Examples:\n")
		fmt.Fprintf(stderr, "  # Bash\n")
		fmt.Fprintf(stderr, "  folio completion bash > /usr/local/etc/bash_completion.d/folio\n")
		fmt.Fprintf(stderr, "  # Zsh\n")
		fmt.Fprintf(stderr, "  folio completion zsh > \"${fpath[1]}/_folio\"\n")
		fmt.Fprintf(stderr, "  # Fish\n")
		fmt.Fprintf(stderr, "  folio completion fish > ~/.config/fish/completions/folio.fish\n")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		return 1
	}

	switch shell := fs.Arg(0); shell {
	case "bash":
		fmt.Fprint(stdout, generateBashCompletion())
	case "zsh":
		fmt.Fprint(stdout, generateZshCompletion())
	case "fish":
		fmt.Fprint(stdout, generateFishCompletion())
	default:
		fmt.Fprintf(stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		return 1
	}
	return 0
}

func generateBashCompletion() string {
	return `# bash completion for folio                              -*- shell-script -*-

_folio() {
    local cur prev words cword
    _init_completion || return

    local commands="list domains show completion version help"

    local list_flags="--domain --featured --output --color"
    local show_flags="--output --color"
    local tui_flags="--theme --no-persist --version"

    local project_ids="$(folio list 2>/dev/null | awk 'NF>1 && $1!~/^[0-9]/ {print ($1=="*") ? $2 : $1}')"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    case "${prev}" in
        --output)
            case "${command}" in
                list)
                    COMPREPLY=($(compgen -W "text json yaml" -- "${cur}"))
                    ;;
                show)
                    COMPREPLY=($(compgen -W "text json" -- "${cur}"))
                    ;;
            esac
            return
            ;;
        --color)
            COMPREPLY=($(compgen -W "auto always never" -- "${cur}"))
            return
            ;;
        --theme)
            COMPREPLY=($(compgen -W "light dark" -- "${cur}"))
            return
            ;;
        --domain)
            # Domains may contain slashes; no completion
            return
            ;;
    esac

    case "${command}" in
        list)
            COMPREPLY=($(compgen -W "${list_flags}" -- "${cur}"))
            ;;
        show)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${show_flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -W "${project_ids}" -- "${cur}"))
            fi
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _folio folio
`
}

func generateZshCompletion() string {
	return `#compdef folio

# zsh completion for folio

_folio() {
    local -a commands
    commands=(
        'list:List projects, optionally filtered by domain'
        'domains:List project domains in catalog order'
        'show:Show one project in full'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--theme[Start with this theme]:theme:(light dark)' \
        '--no-persist[Do not read or save the theme choice]' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'folio commands' commands
            ;;
        args)
            case $words[1] in
                list)
                    _arguments \
                        '--domain[Only list projects in this domain]:domain:' \
                        '--featured[Only list featured projects]' \
                        '--output[Output format]:format:(text json yaml)' \
                        '--color[Highlight output]:mode:(auto always never)'
                    ;;
                show)
                    _arguments \
                        '--output[Output format]:format:(text json)' \
                        '--color[Highlight output]:mode:(auto always never)' \
                        '1:project id:'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_folio "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for folio

# Disable file completions by default
complete -c folio -f

# TUI flags
complete -c folio -n '__fish_use_subcommand' -l theme -d 'Start with this theme' -ra 'light dark'
complete -c folio -n '__fish_use_subcommand' -l no-persist -d 'Do not read or save the theme choice'
complete -c folio -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# Subcommands
complete -c folio -n '__fish_use_subcommand' -a list -d 'List projects, optionally filtered by domain'
complete -c folio -n '__fish_use_subcommand' -a domains -d 'List project domains in catalog order'
complete -c folio -n '__fish_use_subcommand' -a show -d 'Show one project in full'
complete -c folio -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c folio -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c folio -n '__fish_use_subcommand' -a help -d 'Show help message'

# list flags
complete -c folio -n '__fish_seen_subcommand_from list' -l domain -d 'Only list projects in this domain' -r
complete -c folio -n '__fish_seen_subcommand_from list' -l featured -d 'Only list featured projects'
complete -c folio -n '__fish_seen_subcommand_from list' -l output -d 'Output format' -ra 'text json yaml'
complete -c folio -n '__fish_seen_subcommand_from list show' -l color -d 'Highlight output' -ra 'auto always never'

# show flags
complete -c folio -n '__fish_seen_subcommand_from show' -l output -d 'Output format' -ra 'text json'

# completion - shell names
complete -c folio -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
