package shortcuts

// FileBrowserWindow opens for shortcuts without an action.
const FileBrowserWindow = "explorer-window"

const DefaultIcon = "img/file.png"

type defaultShortcut struct {
	key    string
	name   string
	icon   string
	window string
}

var defaultShortcuts = []defaultShortcut{
	{key: "default-documents", name: "Documents", icon: "img/documents.png", window: "word-window"},
	{key: "default-computer", name: "This Computer", icon: "img/computer.png", window: "explorer-window"},
	{key: "default-chrome", name: "Chrome", icon: "img/chrome.png", window: "chrome-window"},
	{key: "default-vscode", name: "VS Code", icon: "img/vscode.png", window: "vscode-window"},
	{key: "default-spotify", name: "Spotify", icon: "img/spotify.png", window: "spotify-window"},
	{key: "default-trash", name: "Trash", icon: "img/trash.png", window: "explorer-window"},
	{key: "default-folder", name: "Folder", icon: "img/pasta.png", window: "explorer-window"},
}

var defaultNames = func() map[string]struct{} {
	names := make(map[string]struct{}, len(defaultShortcuts))
	for _, d := range defaultShortcuts {
		names[d.name] = struct{}{}
	}
	return names
}()

// IsDefaultName reports whether name belongs to the built-in icon set. A user shortcut
// with such a name is indistinguishable from a built-in one for ClearUserShortcuts.
func IsDefaultName(name string) bool {
	_, ok := defaultNames[name]
	return ok
}

// иконки по умолчанию в колонку слева
const (
	defaultColumnX = 20
	defaultRowY    = 20
	defaultRowStep = 90
)
