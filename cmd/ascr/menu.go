package main

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/menu"
)

// runMenu shows the interactive menu. Each entry prompts for the arguments
// its command needs and calls the command's run function directly, so menu
// and CLI paths share the same code.
func runMenu(ctx context.Context) error {
	// One buffered reader shared by the menu loop and the prompts, so
	// buffered input is not lost between them.
	stdin := bufio.NewReader(os.Stdin)

	prompt := func(label string) (string, error) {
		printf("%s: ", label)
		line, err := stdin.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	run := func(ctx context.Context, c *cobra.Command, args ...string) error {
		c.SetContext(ctx)
		return c.RunE(c, args)
	}

	items := []menu.Item{
		{Label: "PDF 자동 분류 및 분할", Run: func(ctx context.Context) error {
			src, err := prompt("PDF 파일 경로")
			if err != nil {
				return err
			}
			return run(ctx, classifyCmd, src)
		}},
		{Label: "페이지 범위로 분할", Run: func(ctx context.Context) error {
			src, err := prompt("PDF 파일 경로")
			if err != nil {
				return err
			}
			pages, err := prompt("페이지 범위 (예: 1-2,3-49)")
			if err != nil {
				return err
			}
			splitPages = pages
			return run(ctx, splitCmd, src)
		}},
		{Label: "PDF 병합", Run: func(ctx context.Context) error {
			files, err := prompt("병합할 PDF (공백 구분)")
			if err != nil {
				return err
			}
			out, err := prompt("출력 파일")
			if err != nil {
				return err
			}
			if out != "" {
				mergeOut = out
			}
			return run(ctx, mergeCmd, strings.Fields(files)...)
		}},
		{Label: "프로젝트 정보", Run: func(ctx context.Context) error {
			return run(ctx, infoCmd)
		}},
		{Label: "디버그 덤프 생성", Run: func(ctx context.Context) error {
			src, err := prompt("PDF 파일 경로")
			if err != nil {
				return err
			}
			return run(ctx, debugDumpCmd, src)
		}},
		{Label: "덤프 → 조견표", Run: func(ctx context.Context) error {
			dump, err := prompt("덤프 파일 경로")
			if err != nil {
				return err
			}
			return run(ctx, debugTableCmd, dump)
		}},
		{Label: "조견표 → 매핑 설정", Run: func(ctx context.Context) error {
			csvPath, err := prompt("조견표 CSV 경로")
			if err != nil {
				return err
			}
			return run(ctx, genconfigCmd, csvPath)
		}},
		{Label: "목차 추출", Run: func(ctx context.Context) error {
			src, err := prompt("PDF 파일 경로")
			if err != nil {
				return err
			}
			return run(ctx, tocCmd, src)
		}},
	}

	return menu.New("건설기준 문서 분류 (ascr)", items, stdin, os.Stdout).Run(ctx)
}
