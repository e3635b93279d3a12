//go:build !splaydebug

package Trees

// debugCheck is a no-op unless built with the splaydebug tag.
func (u *SplayList[E]) debugCheck() {}
