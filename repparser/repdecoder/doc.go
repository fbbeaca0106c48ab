/*

Package repdecoder implements decoding StarCraft Brood War replay files (*.rep).

SC BW replays are basically divided into 2 types:

- modern (starting from 1.18)

- legacy (pre 1.18)

The type detection and utilization of the proper decoder is automatic
and transparent to the package user.

*/
package repdecoder
