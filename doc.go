/*
Copyright © 2026 the AtmoDens authors.
This file is part of AtmoDens.

AtmoDens is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AtmoDens is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AtmoDens.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package atmodens models the density of the Earth's atmosphere as a
// function of height and converts between height and column density (the
// integrated mass per unit area along a line of sight, in grammage units).
//
// Zenith angle is taken into account in the line-of-sight integral assuming
// a flat, horizontally stratified atmosphere; the curvature of the Earth is
// not taken into account.
//
// All quantities are passed as *unit.Unit values
// (github.com/ctessum/unit), which hold their values in SI base units.
// Profiles are immutable once constructed and are safe for concurrent use.
package atmodens

// Version gives the version number.
const Version = "0.1.0"
