/*
Package banquet is the arithmetic layer of a Banquet MPC-in-the-head signature.

It provides the binary extension fields GF(2^32), GF(2^40) and GF(2^48) together
with the lifting of GF(2^8) into them (package field), the polynomial engine used
for secret-sharing reconstruction and consistency checks (package poly), and the
parameter sets selecting the field width (package params).
*/
package banquet
