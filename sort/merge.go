package sort

// gallopLeft locates the position at which to insert key into the
// sorted slice a, left of any equal elements: the result k satisfies
// a[k-1] < key <= a[k]. The search starts at a[hint] and gallops
// outward in steps of 1, 3, 7, 15, ... before finishing with a binary
// search, so it is fast when the result is close to hint.
func (s *timSorter[T]) gallopLeft(key T, a []T, hint int) int {
	lastOfs, ofs := 0, 1
	if s.cmp(key, a[hint]) > 0 {
		// a[hint+lastOfs] < key <= a[hint+ofs]
		maxOfs := len(a) - hint
		for ofs < maxOfs && s.cmp(key, a[hint+ofs]) > 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// a[hint-ofs] < key <= a[hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs && s.cmp(key, a[hint-ofs]) <= 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// a[lastOfs] < key <= a[ofs]; the answer lies in (lastOfs, ofs].
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + ((ofs - lastOfs) >> 1)
		if s.cmp(key, a[m]) > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft, but inserts right of any equal
// elements: the result k satisfies a[k-1] <= key < a[k].
func (s *timSorter[T]) gallopRight(key T, a []T, hint int) int {
	lastOfs, ofs := 0, 1
	if s.cmp(key, a[hint]) < 0 {
		// a[hint-ofs] <= key < a[hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs && s.cmp(key, a[hint-ofs]) < 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// a[hint+lastOfs] <= key < a[hint+ofs]
		maxOfs := len(a) - hint
		for ofs < maxOfs && s.cmp(key, a[hint+ofs]) >= 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	// a[lastOfs] <= key < a[ofs]; the answer lies in (lastOfs, ofs].
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + ((ofs - lastOfs) >> 1)
		if s.cmp(key, a[m]) < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// buffer allocates the temporary storage for one merge.
func (s *timSorter[T]) buffer(n int) []T {
	if s.stats != nil && n > s.stats.MaxBuffer {
		s.stats.MaxBuffer = n
	}
	return make([]T, n)
}

func (s *timSorter[T]) enterGallop() {
	if s.stats != nil {
		s.stats.GallopRounds++
	}
}

/*
mergeLo merges the adjacent runs a[base1:base1+len1] and
a[base2:base2+len2] left to right, with len1 <= len2. Run 1 is copied
into a temporary buffer; ties are taken from it, which keeps the merge
stable.

mergeAt has already trimmed both runs, so the first element of run 2
is less than the first element of run 1, and the last element of run 1
is greater than every element of run 2.

Throughout, dest+len1 == cursor2: the gap between the next
destination and the unmerged rest of run 2 is exactly the number of
buffered elements left.
*/
func (s *timSorter[T]) mergeLo(base1, len1, base2, len2 int) {
	a := s.data
	tmp := s.buffer(len1)
	copy(tmp, a[base1:base1+len1])

	cursor1, cursor2, dest := 0, base2, base1

	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(a[dest:dest+len1], tmp[cursor1:cursor1+len1])
		return
	}
	if len1 == 1 {
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
		return
	}

	minGallop := s.minGallop
outer:
	for {
		count1, count2 := 0, 0 // consecutive wins of run 1 and run 2

		// One element at a time until one run starts winning consistently.
		for {
			if s.cmp(a[cursor2], tmp[cursor1]) < 0 {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		// Galloping until neither run wins by at least s.gallop elements.
		s.enterGallop()
		for {
			count1 = s.gallopRight(a[cursor2], tmp[cursor1:cursor1+len1], 0)
			if count1 != 0 {
				copy(a[dest:dest+count1], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = s.gallopLeft(tmp[cursor1], a[cursor2:cursor2+len2], 0)
			if count2 != 0 {
				copy(a[dest:dest+count2], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}

			minGallop--
			if count1 < s.gallop && count2 < s.gallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalty for leaving galloping mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len1 == 1:
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
	case len1 > 1:
		copy(a[dest:dest+len1], tmp[cursor1:cursor1+len1])
	}
	// len1 == 0 only happens for an inconsistent cmp; the rest of run 2
	// is then already in place.
}

/*
mergeHi is like mergeLo, but for len1 > len2: run 2 is copied into the
temporary buffer and the merge proceeds right to left. Ties are again
taken from the buffer, which at the right end keeps the merge stable.

Throughout, dest-len2 == cursor1, and tmp[:len2] holds the unmerged
rest of run 2.
*/
func (s *timSorter[T]) mergeHi(base1, len1, base2, len2 int) {
	a := s.data
	tmp := s.buffer(len2)
	copy(tmp, a[base2:base2+len2])

	cursor1 := base1 + len1 - 1
	cursor2 := len2 - 1
	dest := base2 + len2 - 1

	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		copy(a[dest-(len2-1):dest+1], tmp[:len2])
		return
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:dest+1+len1], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
		return
	}

	minGallop := s.minGallop
outer:
	for {
		count1, count2 := 0, 0

		for {
			if s.cmp(tmp[cursor2], a[cursor1]) < 0 {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		s.enterGallop()
		for {
			count1 = len1 - s.gallopRight(tmp[cursor2], a[base1:base1+len1], len1-1)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:dest+1+count1], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			count2 = len2 - s.gallopLeft(a[cursor1], tmp[:len2], len2-1)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:dest+1+count2], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}

			minGallop--
			if count1 < s.gallop && count2 < s.gallop {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len2 == 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:dest+1+len1], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
	case len2 > 1:
		copy(a[dest-(len2-1):dest+1], tmp[:len2])
	}
	// len2 == 0: inconsistent cmp, the rest of run 1 is already in place.
}
