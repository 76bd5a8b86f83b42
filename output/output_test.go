// This file is part of Opgen.
//
// Opgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Opgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Opgen.  If not, see <https://www.gnu.org/licenses/>.

package output

import (
	"errors"
	"os"
	"path/filepath"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jetsetilly/opgen/curated"
)

var _ = Describe("WriteFile", func() {
	var (
		mockCtrl *gomock.Controller
		mockFS   *MockFS
		mockFile *MockFile
	)

	const (
		filename = "gen/opcodes.go"
		tmp      = "gen/.opcodes.go.1234"
	)

	data := []byte("package opcodes\n")
	errDisk := errors.New("disk full")

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockFS = NewMockFS(mockCtrl)
		mockFile = NewMockFile(mockCtrl)

		mockFS.EXPECT().CreateTemp("gen", ".opcodes.go.*").Return(mockFile, nil)
		mockFile.EXPECT().Name().Return(tmp).AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should write, sync and rename in order", func() {
		gomock.InOrder(
			mockFile.EXPECT().Write(data).Return(len(data), nil),
			mockFile.EXPECT().Sync().Return(nil),
			mockFile.EXPECT().Chmod(Permissions).Return(nil),
			mockFile.EXPECT().Close().Return(nil),
			mockFS.EXPECT().Rename(tmp, filename).Return(nil),
		)

		Expect(WriteFile(mockFS, filename, data)).To(Succeed())
	})

	It("should remove the temporary file if the write fails", func() {
		gomock.InOrder(
			mockFile.EXPECT().Write(data).Return(0, errDisk),
			mockFile.EXPECT().Close().Return(nil),
			mockFS.EXPECT().Remove(tmp).Return(nil),
		)

		err := WriteFile(mockFS, filename, data)
		Expect(curated.Is(err, OutputUnwritable)).To(BeTrue())
		Expect(errors.Is(err, errDisk)).To(BeTrue())
		Expect(err.Error()).To(Equal("output unwritable: gen/opcodes.go: disk full"))
	})

	It("should remove the temporary file if the sync fails", func() {
		gomock.InOrder(
			mockFile.EXPECT().Write(data).Return(len(data), nil),
			mockFile.EXPECT().Sync().Return(errDisk),
			mockFile.EXPECT().Close().Return(nil),
			mockFS.EXPECT().Remove(tmp).Return(nil),
		)

		Expect(curated.Is(WriteFile(mockFS, filename, data), OutputUnwritable)).To(BeTrue())
	})

	It("should remove the temporary file if the chmod fails", func() {
		gomock.InOrder(
			mockFile.EXPECT().Write(data).Return(len(data), nil),
			mockFile.EXPECT().Sync().Return(nil),
			mockFile.EXPECT().Chmod(Permissions).Return(errDisk),
			mockFile.EXPECT().Close().Return(nil),
			mockFS.EXPECT().Remove(tmp).Return(nil),
		)

		Expect(curated.Is(WriteFile(mockFS, filename, data), OutputUnwritable)).To(BeTrue())
	})

	It("should not close the temporary file twice if the close fails", func() {
		gomock.InOrder(
			mockFile.EXPECT().Write(data).Return(len(data), nil),
			mockFile.EXPECT().Sync().Return(nil),
			mockFile.EXPECT().Chmod(Permissions).Return(nil),
			mockFile.EXPECT().Close().Return(errDisk),
			mockFS.EXPECT().Remove(tmp).Return(nil),
		)

		Expect(curated.Is(WriteFile(mockFS, filename, data), OutputUnwritable)).To(BeTrue())
	})

	It("should remove the temporary file if the rename fails", func() {
		gomock.InOrder(
			mockFile.EXPECT().Write(data).Return(len(data), nil),
			mockFile.EXPECT().Sync().Return(nil),
			mockFile.EXPECT().Chmod(Permissions).Return(nil),
			mockFile.EXPECT().Close().Return(nil),
			mockFS.EXPECT().Rename(tmp, filename).Return(errDisk),
			mockFS.EXPECT().Remove(tmp).Return(nil),
		)

		Expect(curated.Is(WriteFile(mockFS, filename, data), OutputUnwritable)).To(BeTrue())
	})
})

var _ = Describe("WriteFile with a failing CreateTemp", func() {
	It("should not try to clean up", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		defer mockCtrl.Finish()

		mockFS := NewMockFS(mockCtrl)
		mockFS.EXPECT().CreateTemp(".", ".opcodes.rs.*").Return(nil, os.ErrPermission)

		err := WriteFile(mockFS, "opcodes.rs", []byte{})
		Expect(curated.Is(err, OutputUnwritable)).To(BeTrue())
		Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
	})
})

var _ = Describe("OS", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should replace the destination file", func() {
		filename := filepath.Join(dir, "opcodes.go")
		Expect(os.WriteFile(filename, []byte("old"), 0o600)).To(Succeed())

		Expect(WriteFile(OS{}, filename, []byte("new"))).To(Succeed())

		b, err := os.ReadFile(filename)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal("new"))

		info, err := os.Stat(filename)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(Permissions))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("should fail if the directory does not exist", func() {
		filename := filepath.Join(dir, "missing", "opcodes.go")
		err := WriteFile(OS{}, filename, []byte("new"))
		Expect(curated.Is(err, OutputUnwritable)).To(BeTrue())

		_, err = os.Stat(filename)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
