/*
Package vtree provides visual-tree helpers for toolkit-agnostic UI code:
upward ancestor search over parent links, and wiring of lazily generated
item containers back onto their items.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vtree
