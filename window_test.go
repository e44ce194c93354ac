/* Copyright (C) 2024 Timothy J. Parnell
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package relmap

/* -------------------------------------------------------------------------- */

import "testing"

/* -------------------------------------------------------------------------- */

func TestWindowPlan1(t *testing.T) {

  config := DefaultConfig()
  config.WindowSize = 100
  config.Windows    = 2

  windows, err := BuildWindowPlan(config)
  if err != nil {
    t.Fatal(err)
  }
  expected := [][2]int{{-200, -101}, {-100, -1}, {1, 100}, {101, 200}}

  if len(windows) != len(expected) {
    t.Fatal("TestWindowPlan1 failed!")
  }
  for i := 0; i < len(windows); i++ {
    if windows[i].From != expected[i][0] || windows[i].To != expected[i][1] {
      t.Errorf("window %d is (%d, %d), expected (%d, %d)",
        i, windows[i].From, windows[i].To, expected[i][0], expected[i][1])
    }
    if windows[i].Index != i {
      t.Error("TestWindowPlan1 failed!")
    }
  }
}

func TestWindowPlan2(t *testing.T) {

  config := DefaultConfig()
  config.WindowSize  = 100
  config.Windows     = 0
  config.UpWindows   = 0
  config.DownWindows = 3

  windows, err := BuildWindowPlan(config)
  if err != nil {
    t.Fatal(err)
  }
  // the first window starts at offset 0 and must be shifted to +1
  expected := [][2]int{{1, 100}, {101, 200}, {201, 300}}

  if len(windows) != len(expected) {
    t.Fatal("TestWindowPlan2 failed!")
  }
  for i := 0; i < len(windows); i++ {
    if windows[i].From != expected[i][0] || windows[i].To != expected[i][1] {
      t.Error("TestWindowPlan2 failed!")
    }
  }
}

func TestWindowPlanProperties(t *testing.T) {

  sizes  := []int{1, 10, 50, 137}
  counts := [][2]int{{1, 1}, {2, 2}, {0, 3}, {3, 0}, {5, 2}}

  for _, size := range sizes {
    for _, count := range counts {
      config := DefaultConfig()
      config.WindowSize  = size
      config.Windows     = 0
      config.UpWindows   = count[0]
      config.DownWindows = count[1]

      windows, err := BuildWindowPlan(config)
      if err != nil {
        t.Fatal(err)
      }
      if len(windows) != count[0]+count[1] {
        t.Error("TestWindowPlanProperties failed!")
      }
      for i := 0; i < len(windows); i++ {
        // exact width
        if windows[i].Width() != size {
          t.Errorf("size %d counts %v: window %d has width %d",
            size, count, i, windows[i].Width())
        }
        // no window contains offset 0
        if windows[i].From <= 0 && 0 <= windows[i].To {
          t.Errorf("size %d counts %v: window %d spans offset 0", size, count, i)
        }
        // contiguous and non-overlapping, offset 0 excepted
        if i > 0 {
          gap := windows[i].From - windows[i-1].To
          if gap != 1 && !(windows[i-1].To == -1 && windows[i].From == 1) {
            t.Errorf("size %d counts %v: windows %d and %d are not contiguous",
              size, count, i-1, i)
          }
        }
      }
    }
  }
}

func TestWindowPlanErrors(t *testing.T) {

  config := DefaultConfig()
  config.WindowSize = 0

  if _, err := BuildWindowPlan(config); err == nil {
    t.Error("TestWindowPlanErrors failed!")
  } else if _, ok := err.(ConfigError); !ok {
    t.Error("TestWindowPlanErrors failed!")
  }

  config = DefaultConfig()
  config.Windows = 0

  if _, err := BuildWindowPlan(config); err == nil {
    t.Error("TestWindowPlanErrors failed!")
  }
}
