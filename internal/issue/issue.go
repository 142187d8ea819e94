// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	VersionFileNotFoundId Id = iota + 1
	RubyNotInstalledId
	RubyExecutableMissingId
	IdentityProbeMalformedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	versionFileNotFoundIssue = &Issue{
		id: VersionFileNotFoundId,
		mdMsg: `
# No .ruby-version found!

We walked every ancestor of the working directory without finding a
version declaration.

## Things you can try:
- Declare a ruby for the project:
~~~
$ echo "3.2.1" > .ruby-version
~~~

- Or run from a directory inside a project that has one:
~~~
$ cd /path/to/your/project
$ chrb switch
~~~`,
	}

	rubyNotInstalledIssue = &Issue{
		id: RubyNotInstalledId,
		mdMsg: `
# Ruby not installed!

The declared ruby has no install directory under the rubies root.

## Expected layout:
~~~
<rubies_dir>/<identifier>/bin/ruby
~~~

## Things you can try:
- Install the declared ruby, e.g. with ruby-install:
~~~
$ ruby-install ruby 3.2.1
~~~

- Check which rubies root is in effect:
~~~
$ chrb config show
~~~`,
	}

	rubyExecutableMissingIssue = &Issue{
		id: RubyExecutableMissingId,
		mdMsg: `
# Ruby executable missing!

The install directory exists, but bin/ruby is absent or not
executable. The install is probably incomplete or corrupted.

## Things you can try:
- Reinstall the ruby:
~~~
$ ruby-install --cleanup ruby 3.2.1
~~~

- Check permissions on the interpreter binary:
~~~
$ ls -l ~/.rubies/ruby-3.2.1/bin/ruby
~~~`,
	}

	identityProbeMalformedIssue = &Issue{
		id: IdentityProbeMalformedId,
		mdMsg: `
# Ruby identity probe failed!

Invoking the interpreter did not produce the expected
"<engine> <version>" output.

## Common causes:
- Missing shared libraries (check with ldd)
- A corrupted or partially removed install
- Wrappers that print extra output on startup

## Things you can try:
- Run the probe by hand:
~~~
$ ~/.rubies/ruby-3.2.1/bin/ruby -e 'print RUBY_ENGINE, " ", RUBY_VERSION'
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Configuration file locations:
- Linux: ~/.config/chrb/config.cue
- macOS: ~/Library/Application Support/chrb/config.cue
- Windows: %APPDATA%\chrb\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ chrb config init
~~~

- Remove the config file to fall back to defaults

## Example configuration:
~~~cue
rubies_dir: "/opt/rubies"
gems_dir:   "~/.gem"
~~~`,
	}

	issues = map[Id]*Issue{
		versionFileNotFoundIssue.Id():    versionFileNotFoundIssue,
		rubyNotInstalledIssue.Id():       rubyNotInstalledIssue,
		rubyExecutableMissingIssue.Id():  rubyExecutableMissingIssue,
		identityProbeMalformedIssue.Id(): identityProbeMalformedIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
	}
)

func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.Id() - b.Id()) })
	return all
}

func Get(id Id) *Issue {
	return issues[id]
}
