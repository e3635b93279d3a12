//go:build splaydebug

package Trees

// debugLimit bounds the size of trees checked after every mutation.
const debugLimit = 128

// debugCheck panics with a CorruptError if the tree is small enough to check and
// broken.
func (u *SplayList[E]) debugCheck() {
	if u.Size() < debugLimit {
		if err := u.CheckInvariants(); err != nil {
			panic(err)
		}
	}
}
