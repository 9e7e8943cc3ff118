package cli

import "sync"

const (
	pathHome  = "/"
	pathLogin = "/login"
)

// navigator tracks which screen the terminal user is on. The query client
// uses it to send the user to the login prompt after a session loss.
type navigator struct {
	mu         sync.Mutex
	path       string
	onRedirect func()
}

func newNavigator(onRedirect func()) *navigator {
	return &navigator{path: pathHome, onRedirect: onRedirect}
}

func (n *navigator) RedirectToLogin() {
	n.Go(pathLogin)
	if n.onRedirect != nil {
		n.onRedirect()
	}
}

func (n *navigator) CurrentPathIsLogin() bool {
	return n.Path() == pathLogin
}

func (n *navigator) Go(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
}

func (n *navigator) Path() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}
