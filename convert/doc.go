/*
Package convert provides lambda-based value converters for data binding:
plain Go functions wrapped so a binding layer can apply them, and their
optional inverses, to untyped values with runtime type checks.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package convert
